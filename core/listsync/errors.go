package listsync

import (
	"errors"
	"fmt"
)

// Sentinel errors for reconciliation failures. Use errors.Is against these.
var (
	// ErrInvalidArgument indicates a missing or malformed input detected before any mutation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSelectionOutOfRange indicates a selection index outside the pre-call target.
	ErrSelectionOutOfRange = errors.New("selection index out of range")

	// ErrIndexOutOfRange indicates a custom index function produced an unusable position.
	ErrIndexOutOfRange = errors.New("insertion index out of range")

	// ErrInconsistentState indicates internal bookkeeping disagreed with itself, which
	// happens when the identifier function is not deterministic.
	ErrInconsistentState = errors.New("inconsistent reconciliation state")
)

// ArgumentError describes a precondition violation.
type ArgumentError struct {
	Name    string
	Message string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Message)
}

// Is implements errors.Is support
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates a new ArgumentError
func NewArgumentError(name, message string) *ArgumentError {
	return &ArgumentError{Name: name, Message: message}
}

// SelectionError reports a selection index outside [0, Len).
type SelectionError struct {
	Index int
	Len   int
}

// Error implements the error interface
func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection index %d out of range [0, %d)", e.Index, e.Len)
}

// Is matches both ErrSelectionOutOfRange and ErrInvalidArgument since the
// check runs before the target is touched.
func (e *SelectionError) Is(target error) bool {
	return target == ErrSelectionOutOfRange || target == ErrInvalidArgument
}

// InsertionError reports an insertion position outside [0, Len].
// The target has already been partially reconciled when this is returned.
type InsertionError struct {
	Identifier any
	Index      int
	Len        int
}

// Error implements the error interface
func (e *InsertionError) Error() string {
	return fmt.Sprintf("insertion index %d for %v out of range [0, %d]", e.Index, e.Identifier, e.Len)
}

// Is implements errors.Is support
func (e *InsertionError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// ConsistencyError reports a staged item whose source position was never recorded.
type ConsistencyError struct {
	Identifier any
}

// Error implements the error interface
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("no source position recorded for %v", e.Identifier)
}

// Is implements errors.Is support
func (e *ConsistencyError) Is(target error) bool {
	return target == ErrInconsistentState
}
