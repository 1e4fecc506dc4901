package codec

import (
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

// Query selects the JSONPath matches of expr inside v. No match
// yields nothing, a single match yields the matched value itself and
// several matches collect into a list.
func Query(v value.Value, expr string, sp span.Span) (value.Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %q: %v", ErrQuery, expr, err)
	}

	results := path.Select(value.ToInterface(v))
	switch len(results) {
	case 0:
		return value.Nothing{Span: sp}, nil
	case 1:
		return value.FromInterface(results[0], sp)
	default:
		items := make([]value.Value, len(results))
		for i, r := range results {
			out, err := value.FromInterface(r, sp)
			if err != nil {
				return nil, err
			}
			items[i] = out
		}
		return value.List{Items: items, Span: sp}, nil
	}
}
