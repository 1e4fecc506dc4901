package pipeline

import (
	"errors"
	"slices"
	"testing"

	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

func intStream(sig *interrupt.Signal, vals ...int64) *ListStream {
	items := make([]value.Value, len(vals))
	for i, n := range vals {
		items[i] = value.Int{Val: n}
	}
	return NewListStream(slices.Values(items), sig, span.Unknown())
}

func TestListStreamDrain(t *testing.T) {
	t.Parallel()

	s := intStream(nil, 1, 2, 3)

	var got []int64
	for v, err := range s.Values() {
		if err != nil {
			t.Fatalf("Values() error = %v", err)
		}
		got = append(got, v.(value.Int).Val)
	}
	if !slices.Equal(got, []int64{1, 2, 3}) {
		t.Fatalf("Values() = %v, want [1 2 3]", got)
	}
}

func TestListStreamSinglePass(t *testing.T) {
	t.Parallel()

	s := intStream(nil, 1, 2, 3, 4, 5)

	n := 0
	for _, err := range s.Values() {
		if err != nil {
			t.Fatalf("Values() error = %v", err)
		}
		n++
	}
	if n != 5 {
		t.Fatalf("first pass consumed %d elements, want 5", n)
	}

	for v, err := range s.Values() {
		t.Fatalf("second pass yielded (%v, %v), want nothing", v, err)
	}
}

func TestListStreamPartialDrainSeals(t *testing.T) {
	t.Parallel()

	s := intStream(nil, 1, 2, 3, 4)

	for _, err := range s.Values() {
		if err != nil {
			t.Fatalf("Values() error = %v", err)
		}
		break
	}

	for v, err := range s.Values() {
		t.Fatalf("abandoned stream yielded (%v, %v), want nothing", v, err)
	}
}

func TestListStreamCancelMidway(t *testing.T) {
	t.Parallel()

	sig := interrupt.New()

	produced := 0
	seq := func(yield func(value.Value) bool) {
		for i := range 10 {
			produced++
			if !yield(value.Int{Val: int64(i)}) {
				return
			}
		}
	}
	s := NewListStream(seq, sig, span.Unknown())

	consumed := 0
	var got error
	for _, err := range s.Values() {
		if err != nil {
			got = err
			break
		}
		consumed++
		if consumed == 3 {
			sig.Trip()
		}
	}

	if !errors.Is(got, interrupt.ErrInterrupted) {
		t.Fatalf("Values() after trip error = %v, want ErrInterrupted", got)
	}
	if consumed != 3 {
		t.Fatalf("consumed %d elements, want 3", consumed)
	}
	if produced != 3 {
		t.Fatalf("producer generated %d elements after cancellation, want 3", produced)
	}
}

func TestListStreamInterruptedBeforeFirstElement(t *testing.T) {
	t.Parallel()

	sig := interrupt.New()
	sig.Trip()

	s := intStream(sig, 1, 2)
	for v, err := range s.Values() {
		if !errors.Is(err, interrupt.ErrInterrupted) {
			t.Fatalf("Values() = (%v, %v), want ErrInterrupted", v, err)
		}
	}
}

func TestListStreamIDs(t *testing.T) {
	t.Parallel()

	a, b := intStream(nil), intStream(nil)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("stream ids not distinct: %q vs %q", a.ID(), b.ID())
	}
}
