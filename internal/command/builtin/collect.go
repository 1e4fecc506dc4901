package builtin

import (
	"context"
	"fmt"

	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/pipeline"
)

// Collect materializes a streaming input into a single value.
type Collect struct{}

var _ command.Command = (*Collect)(nil)

func (c *Collect) Name() string        { return "collect" }
func (c *Collect) Description() string { return "materialize a stream into a value" }

func (c *Collect) Validate(args []command.Arg) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: collect takes no arguments", command.ErrUsage)
	}
	return nil
}

func (c *Collect) Run(ctx context.Context, env *command.Env, args []command.Arg, input *pipeline.Data) (*pipeline.Data, error) {
	v, err := input.Collect()
	if err != nil {
		return nil, err
	}
	return pipeline.FromValue(v, input.Metadata()), nil
}
