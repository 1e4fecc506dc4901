package pipeline

import (
	"iter"

	"github.com/google/uuid"

	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

// ListStream is a lazy, single-pass, forward-only sequence of values.
// The stream exclusively owns its producer: elements are pulled on
// demand, a consumed element cannot be revisited, and any completed or
// abandoned iteration seals the stream for good.
type ListStream struct {
	id   string
	sp   span.Span
	sig  *interrupt.Signal
	next func() (value.Value, bool)
	stop func()
}

// NewListStream wraps a producer sequence. The interrupt signal is
// polled before every element; sig may be nil.
func NewListStream(seq iter.Seq[value.Value], sig *interrupt.Signal, sp span.Span) *ListStream {
	next, stop := iter.Pull(seq)
	return &ListStream{
		id:   uuid.New().String(),
		sp:   sp,
		sig:  sig,
		next: next,
		stop: stop,
	}
}

// ID returns the stream identity used in debug logging.
func (s *ListStream) ID() string {
	return s.id
}

// Span returns the source region the stream originated from.
func (s *ListStream) Span() span.Span {
	return s.sp
}

// Values iterates the remaining elements. The interrupt flag is
// checked before each element is produced; when tripped, the iteration
// ends with ErrInterrupted instead of presenting the partial sequence
// as complete. However the iteration ends, the stream is sealed:
// ranging again yields nothing.
func (s *ListStream) Values() iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		defer s.stop()
		for {
			if err := s.sig.Err(); err != nil {
				yield(nil, err)
				return
			}
			v, ok := s.next()
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
