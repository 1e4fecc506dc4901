package builtin

import (
	"context"
	"fmt"

	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/value"
)

// Length counts the elements of its input, draining streams to do so.
type Length struct{}

var _ command.Command = (*Length)(nil)

func (c *Length) Name() string        { return "length" }
func (c *Length) Description() string { return "count the elements of the input" }

func (c *Length) Validate(args []command.Arg) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: length takes no arguments", command.ErrUsage)
	}
	return nil
}

func (c *Length) Run(ctx context.Context, env *command.Env, args []command.Arg, input *pipeline.Data) (*pipeline.Data, error) {
	n, err := input.Count()
	if err != nil {
		return nil, err
	}
	return pipeline.FromValue(value.Int{Val: int64(n), Span: env.Head}, nil), nil
}
