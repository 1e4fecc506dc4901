// Package span identifies where a runtime value textually originated.
// Spans are carried for diagnostics only; they never participate in
// equality or hashing.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into the source the value
// was parsed from. The zero value is not meaningful; use Unknown for
// values with no textual origin.
type Span struct {
	Start int
	End   int
}

// New clamps end below start to start, so a Span is always well formed.
func New(start, end int) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

// Unknown returns the span used for values with no source location,
// such as values synthesized by a command.
func Unknown() Span {
	return Span{Start: -1, End: -1}
}

// IsUnknown reports whether the span carries no source location.
func (s Span) IsUnknown() bool {
	return s.Start < 0
}

// Shift moves the span right by off bytes. Unknown spans stay unknown.
func (s Span) Shift(off int) Span {
	if s.IsUnknown() {
		return s
	}
	return Span{Start: s.Start + off, End: s.End + off}
}

func (s Span) String() string {
	if s.IsUnknown() {
		return "unknown"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
