package value

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/fennewald/nushell/internal/span"
)

// FromInterface converts plainly typed Go data into a Value, tagging
// everything it produces with sp. Integer sources are normalized to
// int64; unsigned values wider than int64 fail instead of wrapping.
// Maps become records with sorted field names, since Go map order
// carries no meaning.
func FromInterface(x any, sp span.Span) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Nothing{Span: sp}, nil
	case bool:
		return Bool{Val: x, Span: sp}, nil
	case string:
		return String{Val: x, Span: sp}, nil
	case []byte:
		out := make([]byte, len(x))
		copy(out, x)
		return Binary{Val: out, Span: sp}, nil
	case int:
		return Int{Val: int64(x), Span: sp}, nil
	case int8:
		return Int{Val: int64(x), Span: sp}, nil
	case int16:
		return Int{Val: int64(x), Span: sp}, nil
	case int32:
		return Int{Val: int64(x), Span: sp}, nil
	case int64:
		return Int{Val: x, Span: sp}, nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: unsigned integer %d does not fit in int64", ErrTypeMismatch, x)
		}
		return Int{Val: int64(x), Span: sp}, nil
	case uint8:
		return Int{Val: int64(x), Span: sp}, nil
	case uint16:
		return Int{Val: int64(x), Span: sp}, nil
	case uint32:
		return Int{Val: int64(x), Span: sp}, nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: unsigned integer %d does not fit in int64", ErrTypeMismatch, x)
		}
		return Int{Val: int64(x), Span: sp}, nil
	case float32:
		return Float{Val: float64(x), Span: sp}, nil
	case float64:
		return Float{Val: x, Span: sp}, nil
	case json.Number:
		// Integral numbers stay Int; decimals and integers beyond
		// int64 range become Float.
		if n, err := x.Int64(); err == nil {
			return Int{Val: n, Span: sp}, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed number %q", ErrTypeMismatch, x.String())
		}
		return Float{Val: f, Span: sp}, nil
	case time.Duration:
		return Duration{Val: x, Span: sp}, nil
	case time.Time:
		return Date{Val: x, Span: sp}, nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := FromInterface(item, sp)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = v
		}
		return List{Items: items, Span: sp}, nil
	case map[string]any:
		fields := make([]Field, 0, len(x))
		for _, name := range slices.Sorted(maps.Keys(x)) {
			v, err := FromInterface(x[name], sp)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			fields = append(fields, Field{Name: name, Value: v})
		}
		return Record{Fields: fields, Span: sp}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported Go type %T", ErrTypeMismatch, x)
	}
}

// ToInterface converts v into plainly typed Go data: records become
// map[string]any (field order is not representable there), lists
// []any, scalars their native Go types. This is the bridge into
// JSONPath evaluation and other any-typed consumers.
func ToInterface(v Value) any {
	switch v := v.(type) {
	case Nothing:
		return nil
	case Bool:
		return v.Val
	case Int:
		return v.Val
	case Float:
		return v.Val
	case String:
		return v.Val
	case Binary:
		out := make([]byte, len(v.Val))
		copy(out, v.Val)
		return out
	case Record:
		out := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			out[f.Name] = ToInterface(f.Value)
		}
		return out
	case List:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = ToInterface(item)
		}
		return out
	case Duration:
		return v.Val
	case Filesize:
		return v.Val
	case Date:
		return v.Val
	default:
		return nil
	}
}
