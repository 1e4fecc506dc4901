package pipeline

import (
	"context"
	"iter"

	"golang.org/x/time/rate"

	"github.com/fennewald/nushell/internal/value"
)

// NewLimiter builds a per-element rate limiter with a burst of one.
// Zero or negative means unlimited.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Throttle paces seq against the limiter, waiting before each element
// is passed on. A nil limiter returns seq unchanged. A cancelled
// context surfaces as the final iteration error.
func Throttle(ctx context.Context, seq iter.Seq2[value.Value, error], limiter *rate.Limiter) iter.Seq2[value.Value, error] {
	if limiter == nil {
		return seq
	}
	return func(yield func(value.Value, error) bool) {
		for v, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			if err := limiter.Wait(ctx); err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
