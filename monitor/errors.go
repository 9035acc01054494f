package monitor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLogLevel indicates an unknown log level in Config.
	ErrInvalidLogLevel = errors.New("monitor: invalid log level")

	// ErrInputInvalid wraps input validation failures. The wrapped function
	// is not invoked when input validation fails.
	ErrInputInvalid = errors.New("monitor: input validation failed")

	// ErrOutputInvalid wraps output validation failures. The result is still
	// returned alongside this error.
	ErrOutputInvalid = errors.New("monitor: output validation failed")
)

// PanicError is a panic recovered from a wrapped function.
type PanicError struct {
	Value any    // the value passed to panic
	Stack []byte // stack trace captured at recovery
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("monitor: panic recovered: %v", e.Value)
}
