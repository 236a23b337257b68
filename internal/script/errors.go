package script

import (
	"errors"
	"fmt"
)

// Errors for script runs.
var (
	// ErrTimeout is returned when a script runs past its time limit.
	ErrTimeout = errors.New("script timed out")
)

// Error reports a failed script run. Err is the Session error when an ed
// call failed, so errors.Is matches engine sentinels through it.
type Error struct {
	Script string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Script, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
