package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/fennewald/nushell/internal/cellpath"
	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/value"
)

// Get extracts the value at a cell path from its input. Streams are
// collected first, so a field access over a stream of records yields
// the whole column.
type Get struct{}

var _ command.Command = (*Get)(nil)

func (c *Get) Name() string        { return "get" }
func (c *Get) Description() string { return "extract the value at a cell path" }

func (c *Get) Validate(args []command.Arg) error {
	_, _, err := getSpec(args)
	return err
}

func (c *Get) Run(ctx context.Context, env *command.Env, args []command.Arg, input *pipeline.Data) (*pipeline.Data, error) {
	path, ignore, err := getSpec(args)
	if err != nil {
		return nil, err
	}

	collected, err := input.Collect()
	if err != nil {
		return nil, err
	}

	out, err := value.FollowCellPath(collected, path, false)
	if err != nil {
		if ignore {
			return pipeline.FromValue(value.Nothing{Span: env.Head}, nil), nil
		}
		return nil, err
	}
	return pipeline.FromValue(out, input.Metadata()), nil
}

// getSpec splits flags from the single required cell path.
func getSpec(args []command.Arg) (cellpath.Path, bool, error) {
	var (
		ignore bool
		paths  []cellpath.Path
	)
	for _, a := range args {
		switch {
		case a.Text == "--ignore-errors" || a.Text == "-i":
			ignore = true
		case strings.HasPrefix(a.Text, "-") && a.Text != "-":
			return cellpath.Path{}, false, fmt.Errorf("%w: unknown flag %q", command.ErrUsage, a.Text)
		default:
			p, err := cellpath.ParseAt(a.Text, argOffset(a))
			if err != nil {
				return cellpath.Path{}, false, fmt.Errorf("%w: %v", command.ErrUsage, err)
			}
			paths = append(paths, p)
		}
	}
	if len(paths) != 1 {
		return cellpath.Path{}, false, fmt.Errorf("%w: get takes exactly one cell path", command.ErrUsage)
	}
	return paths[0], ignore, nil
}
