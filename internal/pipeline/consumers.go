package pipeline

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/fennewald/nushell/internal/cellpath"
	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

// Values iterates every element reachable from d exactly once: the
// elements of a materialized list, the single value otherwise, stream
// elements for a list stream, and decoded stdout chunks (text when
// valid UTF-8, binary otherwise) for an external stream. The empty
// envelope yields nothing.
func (d *Data) Values() iter.Seq2[value.Value, error] {
	switch d.kind {
	case KindValue:
		if l, ok := d.val.(value.List); ok {
			return func(yield func(value.Value, error) bool) {
				for _, item := range l.Items {
					if !yield(item, nil) {
						return
					}
				}
			}
		}
		v := d.val
		return func(yield func(value.Value, error) bool) {
			yield(v, nil)
		}
	case KindListStream:
		return d.stream.Values()
	case KindExternalStream:
		return d.externalValues()
	default:
		return func(yield func(value.Value, error) bool) {}
	}
}

func (d *Data) externalValues() iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		if d.external == nil || d.external.Stdout == nil {
			return
		}
		sp := d.external.Stdout.Span()
		for chunk, err := range d.external.Stdout.Chunks() {
			if err != nil {
				yield(nil, err)
				return
			}
			var v value.Value
			if utf8.Valid(chunk) {
				v = value.String{Val: string(chunk), Span: sp}
			} else {
				v = value.Binary{Val: chunk, Span: sp}
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// IsEmpty reports whether d holds no data: the empty envelope, a blank
// value, a stream yielding zero elements, or an external stream whose
// stdout is absent or produces zero bytes. Deciding for a stream
// consumes it; the answer costs the single pass.
func (d *Data) IsEmpty() (bool, error) {
	switch d.kind {
	case KindEmpty:
		return true, nil
	case KindValue:
		return value.IsEmpty(d.val), nil
	case KindListStream:
		for _, err := range d.stream.Values() {
			if err != nil {
				return false, err
			}
			return false, nil
		}
		return true, nil
	case KindExternalStream:
		if d.external == nil || d.external.Stdout == nil {
			return true, nil
		}
		b, err := d.external.Stdout.Bytes()
		if err != nil {
			return false, err
		}
		return len(b) == 0, nil
	}
	return true, nil
}

// Count returns the number of elements: the length of a materialized
// list, or the drained length of a list stream. Other variants are not
// countable.
func (d *Data) Count() (int, error) {
	switch d.kind {
	case KindEmpty:
		return 0, nil
	case KindValue:
		if l, ok := d.val.(value.List); ok {
			return len(l.Items), nil
		}
		return 0, fmt.Errorf("%w: expected list input, got %s", value.ErrTypeMismatch, value.KindOf(d.val))
	case KindListStream:
		n := 0
		for _, err := range d.stream.Values() {
			if err != nil {
				return 0, err
			}
			n++
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: cannot count an external stream", value.ErrTypeMismatch)
	}
}

// Collect materializes d into a single value: a list stream becomes a
// list, an external stream's stdout becomes text (or binary when not
// valid UTF-8), the empty envelope becomes Nothing.
func (d *Data) Collect() (value.Value, error) {
	switch d.kind {
	case KindEmpty:
		return value.Nothing{Span: span.Unknown()}, nil
	case KindValue:
		return d.val, nil
	case KindListStream:
		var items []value.Value
		for v, err := range d.stream.Values() {
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return value.List{Items: items, Span: d.stream.Span()}, nil
	case KindExternalStream:
		if d.external == nil || d.external.Stdout == nil {
			return value.Nothing{Span: span.Unknown()}, nil
		}
		b, err := d.external.Stdout.Bytes()
		if err != nil {
			return nil, err
		}
		sp := d.external.Stdout.Span()
		if utf8.Valid(b) {
			return value.String{Val: string(b), Span: sp}, nil
		}
		return value.Binary{Val: b, Span: sp}, nil
	}
	return value.Nothing{Span: span.Unknown()}, nil
}

// CheckColumns reports whether every path resolves to Nothing on every
// element of d. The first element whose path reaches a real value
// short-circuits the scan: nothing further is drained, which leaves a
// partially consumed stream sealed. Paths resolve strictly, so a
// missing non-optional column is an error, not emptiness.
func (d *Data) CheckColumns(paths []cellpath.Path) (bool, error) {
	for v, err := range d.Values() {
		if err != nil {
			return false, err
		}
		for _, p := range paths {
			got, err := value.FollowCellPath(v, p, false)
			if err != nil {
				return false, err
			}
			if value.KindOf(got) != value.KindNothing {
				return false, nil
			}
		}
	}
	return true, nil
}
