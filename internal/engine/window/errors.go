package window

import (
	"errors"
	"fmt"
)

// ErrInvalidMovement is returned when a row count cannot be converted to a
// byte offset without overflowing.
var ErrInvalidMovement = errors.New("invalid movement")

// IOError wraps a failure of the underlying byte source.
type IOError struct {
	Op     string // "seek", "read" or "size"
	Offset uint64 // File offset the operation targeted
	Err    error
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
