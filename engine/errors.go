package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an out-of-range enumeration value or
	// malformed text.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("engine closed")
)

// ConstructionError reports a backend that could not acquire injection
// privileges. The engine is unusable.
type ConstructionError struct {
	Backend string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("open %s backend: %v", e.Backend, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// BackendError reports a failed OS call. Cause is the OS text verbatim.
type BackendError struct {
	Op    string
	Cause string
	Err   error
}

func (e *BackendError) Error() string {
	return e.Op + ": " + e.Cause
}

func (e *BackendError) Unwrap() error { return e.Err }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
