package builtin

import (
	"context"

	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/value"
)

// IsEmpty reports whether its input holds any data. With cell path
// arguments it instead checks that those cells are empty across every
// row of the input.
type IsEmpty struct{}

var _ command.Command = (*IsEmpty)(nil)

func (c *IsEmpty) Name() string        { return "is-empty" }
func (c *IsEmpty) Description() string { return "check for empty input or empty cells" }

func (c *IsEmpty) Validate(args []command.Arg) error {
	_, err := pathArgs(args)
	return err
}

func (c *IsEmpty) Run(ctx context.Context, env *command.Env, args []command.Arg, input *pipeline.Data) (*pipeline.Data, error) {
	empty, err := c.check(args, input)
	if err != nil {
		return nil, err
	}
	env.Logger.Debug().Str("invocation", env.ID).Bool("empty", empty).Msg("is-empty")
	return pipeline.FromValue(value.Bool{Val: empty, Span: env.Head}, nil), nil
}

func (c *IsEmpty) check(args []command.Arg, input *pipeline.Data) (bool, error) {
	if len(args) == 0 {
		return input.IsEmpty()
	}
	paths, err := pathArgs(args)
	if err != nil {
		return false, err
	}
	return input.CheckColumns(paths)
}
