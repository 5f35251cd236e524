package physics

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateVector is returned when a zero-length vector would be normalised.
	ErrDegenerateVector = errors.New("degenerate velocity vector")
	// ErrWorldLocked is returned when bodies or joints are created during a step.
	ErrWorldLocked = errors.New("physics world is locked")
	// ErrBodyRemoved is returned when a removed body is used to build a joint.
	ErrBodyRemoved = errors.New("body has been removed from the world")
	// ErrInvalidShape is returned for boxes with non-positive extents or density.
	ErrInvalidShape = errors.New("invalid body shape")
)

// DomainError reports a numeric operation that has no meaningful result for
// its input, such as normalising a zero vector.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("physics: %s: %v", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
