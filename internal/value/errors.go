package value

import "errors"

// Traversal and conversion failures. Wrapped messages name the failing
// path member and its originating span.
var (
	// ErrNotFound reports a missing record field or an out of range
	// index on a non-optional path member.
	ErrNotFound = errors.New("value not found")

	// ErrTypeMismatch reports an operation applied to a variant that
	// cannot support it, such as a field name on an integer.
	ErrTypeMismatch = errors.New("type mismatch")
)
