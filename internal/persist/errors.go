package persist

import (
	"errors"
	"fmt"
)

// Errors returned by persistence operations.
var (
	// ErrIO matches every persistence failure via errors.Is.
	ErrIO = errors.New("i/o error")

	// ErrLineContainsSeparator indicates a line cannot be stored without
	// corrupting the one-line-per-record format.
	ErrLineContainsSeparator = errors.New("line contains record separator")

	// ErrNotFound indicates a path has no stored content.
	ErrNotFound = errors.New("not found")
)

// IOError records a failed load or save and the path involved.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrIO so callers can test for any persistence failure.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
