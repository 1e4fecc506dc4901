package cellpath

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fennewald/nushell/internal/span"
)

// ErrSyntax indicates a malformed cell path expression.
var ErrSyntax = errors.New("cell path: syntax error")

var errEmptyPath = fmt.Errorf("%w: path cannot be empty", ErrSyntax)

// Parse compiles a dotted cell path expression such as `0.name` or
// `meal."taco shop".size?`. Member spans are byte ranges into expr.
func Parse(expr string) (Path, error) {
	return ParseAt(expr, 0)
}

// ParseAt is Parse with member spans shifted right by off, for
// expressions embedded in a larger source (an argument list, a script
// line).
func ParseAt(expr string, off int) (Path, error) {
	if expr == "" {
		return Path{}, errEmptyPath
	}

	var members []Member
	i := 0
	for {
		m, next, err := parseMember(expr, i)
		if err != nil {
			return Path{}, err
		}
		m.Span = m.Span.Shift(off)
		members = append(members, m)

		if next == len(expr) {
			break
		}
		if expr[next] != '.' {
			return Path{}, fmt.Errorf("%w: unexpected %q at position %d, expected '.'", ErrSyntax, expr[next], next)
		}
		i = next + 1
		if i == len(expr) {
			return Path{}, fmt.Errorf("%w: path cannot end with '.'", ErrSyntax)
		}
	}

	return Path{Members: members}, nil
}

// parseMember scans one member starting at i and returns it together
// with the index of the first byte after it.
func parseMember(expr string, i int) (Member, int, error) {
	start := i

	var name string
	var quoted bool
	switch expr[i] {
	case '\'', '"':
		var err error
		name, i, err = parseQuoted(expr, i)
		if err != nil {
			return Member{}, i, err
		}
		quoted = true
	default:
		name, i = parseBare(expr, i)
		if name == "" {
			return Member{}, i, fmt.Errorf("%w: empty member at position %d", ErrSyntax, i)
		}
	}

	optional := false
	if i < len(expr) && expr[i] == '?' {
		optional = true
		i++
	}

	m := Member{Name: name, Optional: optional, Span: span.New(start, i)}
	if !quoted {
		if pos, err := strconv.Atoi(name); err == nil {
			if pos < 0 {
				return Member{}, i, fmt.Errorf("%w: negative index %d at position %d", ErrSyntax, pos, start)
			}
			m = Member{Pos: pos, IsIndex: true, Optional: optional, Span: span.New(start, i)}
		}
	}
	return m, i, nil
}

// parseBare consumes bytes up to the next '.' or '?' separator.
func parseBare(expr string, i int) (string, int) {
	start := i
	for i < len(expr) && expr[i] != '.' && expr[i] != '?' {
		i++
	}
	return expr[start:i], i
}

// parseQuoted consumes a single- or double-quoted member name starting
// at the opening quote.
func parseQuoted(expr string, i int) (string, int, error) {
	quote := expr[i]
	i++
	start := i
	for i < len(expr) && expr[i] != quote {
		i++
	}
	if i == len(expr) {
		return "", i, fmt.Errorf("%w: unterminated %q quote at position %d", ErrSyntax, quote, start-1)
	}
	return expr[start:i], i + 1, nil
}
