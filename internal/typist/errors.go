package typist

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation indicates a script step names no known operation.
	ErrUnknownOperation = errors.New("typist: unknown operation")

	// ErrInvalidStep indicates a known operation with unusable arguments.
	ErrInvalidStep = errors.New("typist: invalid step")
)

// UnknownOperationError names the operation a script asked for.
type UnknownOperationError struct {
	Index int
	Name  string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Method %s does not exist on typist (step %d)", e.Name, e.Index)
}

func (e *UnknownOperationError) Unwrap() error {
	return ErrUnknownOperation
}
