package vocab

import "errors"

// Sentinel errors for the "invalid argument" error kind (spec.md §7). These
// are returned, never panicked, since they originate from caller-supplied
// data rather than an internal state violation.
var (
	ErrNotOrthogonal  = errors.New("vocab: line is not horizontal or vertical, or has zero length")
	ErrLineNotOrdered = errors.New("vocab: line endpoints are not in canonical order")
	ErrNegativeOffset = errors.New("vocab: offset must be non-negative")
	ErrEmptyPart      = errors.New("vocab: part must have begin < end")
	ErrRectNotOrdered = errors.New("vocab: rect points must satisfy p0 <= p1 componentwise")
	ErrNotRepresentable = errors.New("vocab: position is not representable on the grid")
)
