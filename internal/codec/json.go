package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

// DecodeJSON parses a JSON document into a value. Objects decode
// through the token stream so their field order survives; numbers stay
// integers when they fit.
func DecodeJSON(data []byte, sp span.Span) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return value.Nothing{Span: sp}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	v, err := jsonValue(dec, tok, sp)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}
	return v, nil
}

func jsonValue(dec *json.Decoder, tok json.Token, sp span.Span) (value.Value, error) {
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			return jsonRecord(dec, sp)
		case '[':
			return jsonList(dec, sp)
		}
		return nil, fmt.Errorf("%w: unexpected delimiter %q", ErrDecode, tok.String())
	case string:
		return value.String{Val: tok, Span: sp}, nil
	case json.Number:
		return value.FromInterface(tok, sp)
	case bool:
		return value.Bool{Val: tok, Span: sp}, nil
	case nil:
		return value.Nothing{Span: sp}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrDecode, tok)
	}
}

func jsonRecord(dec *json.Decoder, sp span.Span) (value.Value, error) {
	rec := value.Record{Span: sp}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return rec, nil
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key must be a string, got %v", ErrDecode, tok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		v, err := jsonValue(dec, valTok, sp)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		rec.Set(name, v)
	}
}

func jsonList(dec *json.Decoder, sp span.Span) (value.Value, error) {
	list := value.List{Span: sp}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return list, nil
		}
		v, err := jsonValue(dec, tok, sp)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", len(list.Items), err)
		}
		list.Items = append(list.Items, v)
	}
}

// EncodeJSON renders a value as compact JSON. The writer is hand
// rolled because encoding/json marshals maps in key order, which would
// lose record field order.
func EncodeJSON(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v value.Value) error {
	switch v := v.(type) {
	case value.Nothing:
		buf.WriteString("null")
	case value.Bool:
		buf.WriteString(strconv.FormatBool(v.Val))
	case value.Int:
		buf.WriteString(strconv.FormatInt(v.Val, 10))
	case value.Float:
		if math.IsNaN(v.Val) || math.IsInf(v.Val, 0) {
			return fmt.Errorf("%w: %v has no JSON representation", ErrEncode, v.Val)
		}
		buf.WriteString(strconv.FormatFloat(v.Val, 'g', -1, 64))
	case value.String:
		return writeJSONString(buf, v.Val)
	case value.Binary:
		out, err := json.Marshal(v.Val)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		buf.Write(out)
	case value.Record:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case value.List:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.Duration:
		buf.WriteString(strconv.FormatInt(int64(v.Val), 10))
	case value.Filesize:
		buf.WriteString(strconv.FormatInt(v.Val, 10))
	case value.Date:
		out, err := json.Marshal(v.Val)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		buf.Write(out)
	default:
		return fmt.Errorf("%w: unsupported value %T", ErrEncode, v)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	out, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	buf.Write(out)
	return nil
}
