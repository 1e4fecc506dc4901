package value

import (
	"fmt"

	"github.com/fennewald/nushell/internal/cellpath"
)

// FollowCellPath resolves path against v, descending one member at a
// time, and returns a deep copy of the addressed sub-value. v is never
// mutated.
//
// A field member expects a Record. Applied to a List it is broadcast:
// the field is read from every element and the results collected into
// a new List, which is how column access over a table works without
// explicit iteration by the caller. A missing field yields Nothing
// when the member is optional or allowMissing is set, and fails with
// ErrNotFound otherwise.
//
// An index member addresses List elements, String characters or Binary
// bytes (a byte reads back as Int). Out of range yields Nothing when
// the member is optional and fails with ErrNotFound otherwise.
//
// Traversal is strictly left to right; the first failing non-optional
// member aborts with that member's error.
func FollowCellPath(v Value, path cellpath.Path, allowMissing bool) (Value, error) {
	cur := v
	for _, m := range path.Members {
		next, err := followMember(cur, m, allowMissing)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return Clone(cur), nil
}

func followMember(v Value, m cellpath.Member, allowMissing bool) (Value, error) {
	if m.IsIndex {
		return followIndex(v, m)
	}
	return followField(v, m, allowMissing)
}

func followField(v Value, m cellpath.Member, allowMissing bool) (Value, error) {
	switch v := v.(type) {
	case Record:
		if got, ok := v.Get(m.Name); ok {
			return got, nil
		}
		if m.Optional || allowMissing {
			return Nothing{Span: m.Span}, nil
		}
		return nil, fmt.Errorf("%w: cannot find column %q (%s)", ErrNotFound, m.Name, m.Span)
	case List:
		items := make([]Value, len(v.Items))
		for i, item := range v.Items {
			got, err := followField(item, m, allowMissing)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = got
		}
		return List{Items: items, Span: v.Span}, nil
	case Nothing:
		if m.Optional {
			return Nothing{Span: m.Span}, nil
		}
		return nil, fmt.Errorf("%w: cannot access field %q on nothing (%s)", ErrTypeMismatch, m.Name, m.Span)
	default:
		return nil, fmt.Errorf("%w: cannot access field %q on %s (%s)", ErrTypeMismatch, m.Name, KindOf(v), m.Span)
	}
}

func followIndex(v Value, m cellpath.Member) (Value, error) {
	switch v := v.(type) {
	case List:
		if m.Pos >= 0 && m.Pos < len(v.Items) {
			return v.Items[m.Pos], nil
		}
		if m.Optional {
			return Nothing{Span: m.Span}, nil
		}
		return nil, fmt.Errorf("%w: index %d beyond end of list (length %d) (%s)", ErrNotFound, m.Pos, len(v.Items), m.Span)
	case String:
		runes := []rune(v.Val)
		if m.Pos >= 0 && m.Pos < len(runes) {
			return String{Val: string(runes[m.Pos]), Span: v.Span}, nil
		}
		if m.Optional {
			return Nothing{Span: m.Span}, nil
		}
		return nil, fmt.Errorf("%w: index %d beyond end of string (length %d) (%s)", ErrNotFound, m.Pos, len(runes), m.Span)
	case Binary:
		if m.Pos >= 0 && m.Pos < len(v.Val) {
			return Int{Val: int64(v.Val[m.Pos]), Span: v.Span}, nil
		}
		if m.Optional {
			return Nothing{Span: m.Span}, nil
		}
		return nil, fmt.Errorf("%w: index %d beyond end of binary (length %d) (%s)", ErrNotFound, m.Pos, len(v.Val), m.Span)
	case Nothing:
		if m.Optional {
			return Nothing{Span: m.Span}, nil
		}
		return nil, fmt.Errorf("%w: cannot index into nothing (%s)", ErrTypeMismatch, m.Span)
	default:
		return nil, fmt.Errorf("%w: cannot index into %s (%s)", ErrTypeMismatch, KindOf(v), m.Span)
	}
}
