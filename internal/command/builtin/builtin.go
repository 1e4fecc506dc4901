// Package builtin holds the built in pipeline commands.
package builtin

import (
	"fmt"

	"github.com/fennewald/nushell/internal/cellpath"
	"github.com/fennewald/nushell/internal/command"
)

// pathArgs parses every argument as a cell path, anchored at its
// position in the invocation line.
func pathArgs(args []command.Arg) ([]cellpath.Path, error) {
	if len(args) == 0 {
		return nil, nil
	}
	paths := make([]cellpath.Path, 0, len(args))
	for _, a := range args {
		p, err := cellpath.ParseAt(a.Text, argOffset(a))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", command.ErrUsage, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func argOffset(a command.Arg) int {
	if a.Span.IsUnknown() {
		return 0
	}
	return a.Span.Start
}
