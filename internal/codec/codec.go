// Package codec converts between serialized documents and runtime
// values. Both directions preserve record field order: YAML goes
// through the goccy AST rather than map-based unmarshalling, and JSON
// through a token-level walk, because Go maps would scramble the
// insertion order a Record guarantees.
package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

var (
	// ErrDecode reports malformed or unsupported input.
	ErrDecode = errors.New("cannot decode input")

	// ErrEncode reports a value that cannot be represented in the
	// requested format.
	ErrEncode = errors.New("cannot encode value")

	// ErrQuery reports a malformed JSONPath expression.
	ErrQuery = errors.New("query failed")
)

// Format names a serialization format handled by this package.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatRaw  Format = "raw"
	FormatText Format = "text"
)

// ParseFormat validates a format name from configuration.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatAuto, FormatJSON, FormatYAML, FormatRaw, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrDecode, s)
	}
}

// Detect guesses the format of data: documents opening with a JSON
// delimiter or quote are JSON, everything else is treated as YAML
// (which accepts plain scalars too).
func Detect(data []byte) Format {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[', '"':
			return FormatJSON
		default:
			return FormatYAML
		}
	}
	return FormatYAML
}

// Decode parses data in the given format. Every produced value carries
// sp as its source region.
func Decode(format Format, data []byte, sp span.Span) (value.Value, error) {
	switch format {
	case FormatAuto:
		return Decode(Detect(data), data, sp)
	case FormatJSON:
		return DecodeJSON(data, sp)
	case FormatYAML:
		return DecodeYAML(data, sp)
	case FormatRaw:
		if utf8.Valid(data) {
			return value.String{Val: string(data), Span: sp}, nil
		}
		out := make([]byte, len(data))
		copy(out, data)
		return value.Binary{Val: out, Span: sp}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported input format %q", ErrDecode, format)
	}
}

// Encode renders v in the given format.
func Encode(format Format, v value.Value) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(v)
	case FormatYAML:
		return EncodeYAML(v)
	default:
		return nil, fmt.Errorf("%w: unsupported output format %q", ErrEncode, format)
	}
}
