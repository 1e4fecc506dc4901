package value

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IntoString renders v as display text. Records render as
// `{name: value, name: value}` in field order, lists as
// `[item, item]`. Nothing renders as the empty string.
func IntoString(v Value) string {
	switch v := v.(type) {
	case Nothing:
		return ""
	case Bool:
		return strconv.FormatBool(v.Val)
	case Int:
		return strconv.FormatInt(v.Val, 10)
	case Float:
		return strconv.FormatFloat(v.Val, 'f', -1, 64)
	case String:
		return v.Val
	case Binary:
		return hex.EncodeToString(v.Val)
	case Record:
		parts := make([]string, 0, len(v.Fields))
		for _, f := range v.Fields {
			parts = append(parts, f.Name+": "+IntoString(f.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case List:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, IntoString(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Duration:
		return v.Val.String()
	case Filesize:
		return FormatFilesize(v.Val)
	case Date:
		return v.Val.Format(time.RFC3339)
	default:
		return ""
	}
}

// FormatFilesize renders a byte count with binary units, one decimal
// place from KiB upward.
func FormatFilesize(n int64) string {
	const unit = 1024
	if n < unit && n > -unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit || m <= -unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
