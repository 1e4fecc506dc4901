// Package interrupt provides the process-wide cooperative cancellation
// flag threaded through every long-running pipeline consumption. Stream
// consumers poll the flag before producing each element; there is no
// forced preemption.
package interrupt

import (
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
)

// ErrInterrupted is the outcome returned when consumption stopped early
// because the flag was tripped. It is a distinct outcome, not a failure:
// callers propagate it instead of masking it as success or error.
var ErrInterrupted = errors.New("interrupted by user")

// Signal is a shared, set-once-per-invocation cancellation flag.
// Consumers only ever read it; the owner trips it on user interrupt and
// resets it at the start of each top-level command invocation.
//
// A nil *Signal is valid and never trips, so library code can poll
// unconditionally.
type Signal struct {
	tripped atomic.Bool
}

// New returns an untripped signal.
func New() *Signal {
	return &Signal{}
}

// Trip sets the flag. Safe to call from a signal handler goroutine.
func (s *Signal) Trip() {
	if s != nil {
		s.tripped.Store(true)
	}
}

// Reset clears the flag. Called at the start of each top-level
// invocation.
func (s *Signal) Reset() {
	if s != nil {
		s.tripped.Store(false)
	}
}

// Triggered reports whether an interrupt has been requested.
func (s *Signal) Triggered() bool {
	return s != nil && s.tripped.Load()
}

// Err returns ErrInterrupted when the flag is tripped, nil otherwise.
// Consumers call it at each suspension point:
//
//	if err := sig.Err(); err != nil {
//		return err
//	}
func (s *Signal) Err() error {
	if s.Triggered() {
		return ErrInterrupted
	}
	return nil
}

// Notify trips the signal whenever one of the given OS signals arrives
// (SIGINT if none are given). It returns a stop function that releases
// the underlying handler.
func (s *Signal) Notify(signals ...os.Signal) (stop func()) {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				s.Trip()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
