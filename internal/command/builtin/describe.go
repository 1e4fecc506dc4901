package builtin

import (
	"context"
	"fmt"

	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/value"
)

// Describe names the shape of its input without consuming it. Streams
// stay undrained and report themselves as streams.
type Describe struct{}

var _ command.Command = (*Describe)(nil)

func (c *Describe) Name() string        { return "describe" }
func (c *Describe) Description() string { return "name the type of the input" }

func (c *Describe) Validate(args []command.Arg) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: describe takes no arguments", command.ErrUsage)
	}
	return nil
}

func (c *Describe) Run(ctx context.Context, env *command.Env, args []command.Arg, input *pipeline.Data) (*pipeline.Data, error) {
	var desc string
	switch input.Kind() {
	case pipeline.KindValue:
		v, _ := input.Value()
		desc = value.KindOf(v).String()
	case pipeline.KindListStream:
		desc = "list (stream)"
	case pipeline.KindExternalStream:
		desc = "raw input"
	default:
		desc = "nothing"
	}
	return pipeline.FromValue(value.String{Val: desc, Span: env.Head}, nil), nil
}
