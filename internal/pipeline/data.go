// Package pipeline implements the streaming envelope passed between
// shell commands: no data, one materialized value, a lazy value
// stream, or an external process's byte streams, consumed uniformly.
//
// A Data exclusively owns whatever stream backs it. Consumption is
// single pass: once iterated or materialized, the same envelope cannot
// be replayed, and it must never be handed to two readers. Callers
// that need reuse collect to a value first.
package pipeline

import (
	"fmt"

	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

// Kind discriminates the four envelope variants. It lets a consumer
// tell the empty envelope from a stream that happens to produce
// nothing, which plain emptiness checks cannot.
type Kind int

const (
	KindEmpty Kind = iota
	KindValue
	KindListStream
	KindExternalStream
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindValue:
		return "value"
	case KindListStream:
		return "list stream"
	case KindExternalStream:
		return "external stream"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Metadata is the optional side channel travelling with pipeline data.
type Metadata struct {
	// FormatHint names the serialization format the data came from
	// ("json", "yaml"), letting a sink render it the same way.
	FormatHint string
}

// Data is the envelope a command receives and returns.
type Data struct {
	kind     Kind
	val      value.Value
	stream   *ListStream
	external *ExternalStream
	meta     *Metadata
}

// Empty returns the no-data envelope.
func Empty() *Data {
	return &Data{kind: KindEmpty}
}

// FromValue wraps one materialized value. meta may be nil.
func FromValue(v value.Value, meta *Metadata) *Data {
	return &Data{kind: KindValue, val: v, meta: meta}
}

// FromListStream wraps a lazy value stream. meta may be nil.
func FromListStream(s *ListStream, meta *Metadata) *Data {
	return &Data{kind: KindListStream, stream: s, meta: meta}
}

// FromExternal wraps an external process's streams. meta may be nil.
func FromExternal(e *ExternalStream, meta *Metadata) *Data {
	return &Data{kind: KindExternalStream, external: e, meta: meta}
}

// Kind returns the envelope variant.
func (d *Data) Kind() Kind {
	return d.kind
}

// Metadata returns the side channel, nil when none was attached.
func (d *Data) Metadata() *Metadata {
	return d.meta
}

// Value returns the materialized value when Kind is KindValue.
func (d *Data) Value() (value.Value, bool) {
	return d.val, d.kind == KindValue
}

// Stream returns the value stream when Kind is KindListStream.
func (d *Data) Stream() (*ListStream, bool) {
	return d.stream, d.kind == KindListStream
}

// External returns the process streams when Kind is KindExternalStream.
func (d *Data) External() (*ExternalStream, bool) {
	return d.external, d.kind == KindExternalStream
}

// Span returns the source region of the data, when one is known.
func (d *Data) Span() span.Span {
	switch d.kind {
	case KindValue:
		return value.SpanOf(d.val)
	case KindListStream:
		return d.stream.Span()
	case KindExternalStream:
		if d.external != nil && d.external.Stdout != nil {
			return d.external.Stdout.Span()
		}
	}
	return span.Unknown()
}
