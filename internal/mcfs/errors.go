package mcfs

import (
	"errors"
	"fmt"
)

// ErrInvalidMount is wrapped by every error returned from Open.
var ErrInvalidMount = errors.New("invalid mount")

// Op names the primitive that failed inside an IOError.
type Op string

const (
	OpRead           Op = "read"
	OpWrite          Op = "write"
	OpCheckExistence Op = "check existence of"
)

// IOError is returned when a read, write or existence check against the
// mounted tree fails. Path is always relative to the mount root.
type IOError struct {
	Path string
	Op   Op
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a field whose text is not a valid encoding of Kind.
type ParseError struct {
	Kind string // "position", "blockpos", "health", "time"
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s '%s': %v", e.Kind, e.Raw, e.Err)
	}
	return fmt.Sprintf("invalid %s '%s'", e.Kind, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }
