package builtin

import (
	"context"
	"fmt"

	"github.com/fennewald/nushell/internal/codec"
	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/pipeline"
)

// Query runs a JSONPath expression over the collected input.
type Query struct{}

var _ command.Command = (*Query)(nil)

func (c *Query) Name() string        { return "query" }
func (c *Query) Description() string { return "select values with a JSONPath expression" }

func (c *Query) Validate(args []command.Arg) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: query takes exactly one JSONPath expression", command.ErrUsage)
	}
	return nil
}

func (c *Query) Run(ctx context.Context, env *command.Env, args []command.Arg, input *pipeline.Data) (*pipeline.Data, error) {
	if err := c.Validate(args); err != nil {
		return nil, err
	}

	collected, err := input.Collect()
	if err != nil {
		return nil, err
	}

	out, err := codec.Query(collected, args[0].Text, env.Head)
	if err != nil {
		return nil, err
	}
	env.Logger.Debug().Str("invocation", env.ID).Str("expr", args[0].Text).Msg("query")
	return pipeline.FromValue(out, nil), nil
}
