package state

import "errors"

// Domain errors for structured-state arithmetic.
var (
	// ErrInvalidArgument indicates empty or length-mismatched inputs; a bug
	// at the call site rather than a data condition.
	ErrInvalidArgument = errors.New("state: invalid argument")

	// ErrStructureMismatch indicates states that do not share the same
	// nested shape.
	ErrStructureMismatch = errors.New("state: structure mismatch")
)
