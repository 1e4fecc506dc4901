// Package value defines the closed set of runtime data variants that
// flow through pipeline commands: scalars, binary blobs, ordered
// records and lists, and the explicit absence marker Nothing. Behavior
// over the union (emptiness, kind tags, cell path traversal, text
// rendering) lives in package-level functions that switch over the
// variants, keeping each operation total and in one place instead of
// scattered across methods.
//
// Every variant carries a span: the source region the value originated
// from. Spans are diagnostic only and never participate in equality.
package value

import (
	"bytes"
	"time"

	"github.com/fennewald/nushell/internal/span"
)

// Value is one runtime datum. The variant set is closed: Nothing,
// Bool, Int, Float, String, Binary, Record, List, Duration, Filesize
// and Date.
type Value interface {
	valueNode()
}

// Nothing is the absence of data, distinct from an empty string or an
// empty collection.
type Nothing struct {
	Span span.Span
}

type Bool struct {
	Val  bool
	Span span.Span
}

type Int struct {
	Val  int64
	Span span.Span
}

type Float struct {
	Val  float64
	Span span.Span
}

type String struct {
	Val  string
	Span span.Span
}

// Binary is an owned byte sequence.
type Binary struct {
	Val  []byte
	Span span.Span
}

// Field is one named entry of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered mapping from field name to value. Field names
// are unique; Set replaces in place, keeping the original position.
type Record struct {
	Fields []Field
	Span   span.Span
}

// List is an ordered sequence of values. Elements may be of mixed
// variants.
type List struct {
	Items []Value
	Span  span.Span
}

// Duration is an elapsed time.
type Duration struct {
	Val  time.Duration
	Span span.Span
}

// Filesize is a size in bytes.
type Filesize struct {
	Val  int64
	Span span.Span
}

// Date is a point in time.
type Date struct {
	Val  time.Time
	Span span.Span
}

func (Nothing) valueNode()  {}
func (Bool) valueNode()     {}
func (Int) valueNode()      {}
func (Float) valueNode()    {}
func (String) valueNode()   {}
func (Binary) valueNode()   {}
func (Record) valueNode()   {}
func (List) valueNode()     {}
func (Duration) valueNode() {}
func (Filesize) valueNode() {}
func (Date) valueNode()     {}

// SpanOf returns the source region v originated from.
func SpanOf(v Value) span.Span {
	switch v := v.(type) {
	case Nothing:
		return v.Span
	case Bool:
		return v.Span
	case Int:
		return v.Span
	case Float:
		return v.Span
	case String:
		return v.Span
	case Binary:
		return v.Span
	case Record:
		return v.Span
	case List:
		return v.Span
	case Duration:
		return v.Span
	case Filesize:
		return v.Span
	case Date:
		return v.Span
	default:
		return span.Unknown()
	}
}

// IsEmpty reports whether v is blank: Nothing, or a string, binary,
// record or list with no contents. Numbers, booleans and the remaining
// scalars are never empty.
func IsEmpty(v Value) bool {
	switch v := v.(type) {
	case Nothing:
		return true
	case String:
		return v.Val == ""
	case Binary:
		return len(v.Val) == 0
	case Record:
		return len(v.Fields) == 0
	case List:
		return len(v.Items) == 0
	default:
		return false
	}
}

// Clone returns a deep copy of v. Scalars are returned as is; binary,
// record and list storage is copied so the result shares nothing with
// the source.
func Clone(v Value) Value {
	switch v := v.(type) {
	case Binary:
		out := make([]byte, len(v.Val))
		copy(out, v.Val)
		return Binary{Val: out, Span: v.Span}
	case Record:
		fields := make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Field{Name: f.Name, Value: Clone(f.Value)}
		}
		return Record{Fields: fields, Span: v.Span}
	case List:
		items := make([]Value, len(v.Items))
		for i, item := range v.Items {
			items[i] = Clone(item)
		}
		return List{Items: items, Span: v.Span}
	default:
		return v
	}
}

// Equal reports whether two values hold the same data. Spans are
// ignored. Int and Float compare numerically across the two variants;
// every other comparison requires matching variants.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nothing:
		_, ok := b.(Nothing)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Val == bv.Val
	case Int:
		switch bv := b.(type) {
		case Int:
			return av.Val == bv.Val
		case Float:
			return float64(av.Val) == bv.Val
		}
		return false
	case Float:
		switch bv := b.(type) {
		case Int:
			return av.Val == float64(bv.Val)
		case Float:
			return av.Val == bv.Val
		}
		return false
	case String:
		bv, ok := b.(String)
		return ok && av.Val == bv.Val
	case Binary:
		bv, ok := b.(Binary)
		return ok && bytes.Equal(av.Val, bv.Val)
	case Record:
		bv, ok := b.(Record)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Name != bv.Fields[i].Name || !Equal(av.Fields[i].Value, bv.Fields[i].Value) {
				return false
			}
		}
		return true
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case Duration:
		bv, ok := b.(Duration)
		return ok && av.Val == bv.Val
	case Filesize:
		bv, ok := b.(Filesize)
		return ok && av.Val == bv.Val
	case Date:
		bv, ok := b.(Date)
		return ok && av.Val.Equal(bv.Val)
	default:
		return a == nil && b == nil
	}
}
