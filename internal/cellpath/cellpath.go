// Package cellpath represents ordered addresses into nested runtime
// values: a sequence of field-name and index steps such as `0.name` or
// `meal.size?`. A trailing '?' marks a step as optional, meaning a
// missing field or out-of-range index resolves to nothing instead of
// failing.
package cellpath

import (
	"strconv"
	"strings"

	"github.com/fennewald/nushell/internal/span"
)

// Member is one addressing step: either a record field name or an
// element position. IsIndex selects which of Name and Pos is
// meaningful.
type Member struct {
	Name     string
	Pos      int
	IsIndex  bool
	Optional bool
	Span     span.Span
}

// Field builds a required field-name step.
func Field(name string, sp span.Span) Member {
	return Member{Name: name, Span: sp}
}

// Index builds a required position step.
func Index(pos int, sp span.Span) Member {
	return Member{Pos: pos, IsIndex: true, Span: sp}
}

// OptionalField builds a field-name step that tolerates being missing.
func OptionalField(name string, sp span.Span) Member {
	return Member{Name: name, Optional: true, Span: sp}
}

// OptionalIndex builds a position step that tolerates being missing.
func OptionalIndex(pos int, sp span.Span) Member {
	return Member{Pos: pos, IsIndex: true, Optional: true, Span: sp}
}

func (m Member) String() string {
	var b strings.Builder
	if m.IsIndex {
		b.WriteString(strconv.Itoa(m.Pos))
	} else if needsQuoting(m.Name) {
		b.WriteByte('"')
		b.WriteString(m.Name)
		b.WriteByte('"')
	} else {
		b.WriteString(m.Name)
	}
	if m.Optional {
		b.WriteByte('?')
	}
	return b.String()
}

// Path is a non-empty ordered sequence of members, interpreted left to
// right as successive descents into nested values.
type Path struct {
	Members []Member
}

// New builds a path from members. At least one member is required.
func New(members ...Member) (Path, error) {
	if len(members) == 0 {
		return Path{}, errEmptyPath
	}
	return Path{Members: members}, nil
}

// Span covers the whole path: from the first member's start to the last
// member's end. Unknown when the members carry no source location.
func (p Path) Span() span.Span {
	if len(p.Members) == 0 {
		return span.Unknown()
	}
	first := p.Members[0].Span
	last := p.Members[len(p.Members)-1].Span
	if first.IsUnknown() || last.IsUnknown() {
		return span.Unknown()
	}
	return span.New(first.Start, last.End)
}

// String renders the path in the dotted syntax Parse accepts. Field
// names containing path metacharacters are quoted.
func (p Path) String() string {
	parts := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, ".")
}

func needsQuoting(name string) bool {
	if name == "" {
		return true
	}
	if _, err := strconv.Atoi(name); err == nil {
		// A bare all-digit name would parse back as an index.
		return true
	}
	return strings.ContainsAny(name, ".?\"' ")
}
