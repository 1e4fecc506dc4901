// Package command defines the interface pipeline commands implement
// and the registry they are looked up in.
package command

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/span"
)

// ErrUsage reports arguments a command cannot accept.
var ErrUsage = errors.New("invalid arguments")

// Arg is a single command argument together with its position in the
// invocation line, so failures can point back at their source.
type Arg struct {
	Text string
	Span span.Span
}

// Env carries the per invocation surroundings a command runs in.
type Env struct {
	Logger    zerolog.Logger
	Interrupt *interrupt.Signal

	// Head is the region of the invocation line naming the command.
	// Values a command fabricates carry it as their source.
	Head span.Span

	// ID tags every log line of one invocation.
	ID string
}

// NewEnv builds an invocation environment with a fresh ID.
func NewEnv(logger zerolog.Logger, sig *interrupt.Signal, head span.Span) *Env {
	return &Env{
		Logger:    logger,
		Interrupt: sig,
		Head:      head,
		ID:        uuid.New().String(),
	}
}

// Command is the interface every pipeline command implements.
type Command interface {
	// Name returns the identifier the command is invoked by.
	Name() string

	// Description returns a one line summary for help output.
	Description() string

	// Validate checks args before execution. Called before Run.
	Validate(args []Arg) error

	// Run consumes the input envelope and produces the output one.
	// Input ownership transfers to the command: a stream it drains is
	// gone. The context carries deadline style cancellation, env.Interrupt
	// the user's interrupt flag.
	Run(ctx context.Context, env *Env, args []Arg, input *pipeline.Data) (*pipeline.Data, error)
}
