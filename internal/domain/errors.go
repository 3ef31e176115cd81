package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by a use case.
var (
	// ErrValidation indicates missing or invalid input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates that no matching entity exists.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates that the entity already exists.
	ErrConflict = errors.New("already exists")

	// ErrStoreUnavailable indicates the graph store is refusing calls,
	// for example because the circuit breaker is open.
	ErrStoreUnavailable = errors.New("graph store unavailable")
)

// Error is a classified error carrying a client-facing message.
type Error struct {
	// Kind is one of the Err* sentinels above
	Kind error

	// Message is safe to return to API clients
	Message string

	// Err is the underlying cause, if any
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates an ErrValidation error with the given message.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewNotFoundError creates an ErrNotFound error with the given message.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewConflictError creates an ErrConflict error with the given message.
func NewConflictError(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

// StoreError wraps a failure returned by a graph store adapter.
type StoreError struct {
	// Op is the store operation that failed (e.g., "UpsertCity")
	Op string

	// Err is the driver error
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("graph store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the store operation name.
// It returns nil if err is nil and passes ErrNotFound and ErrConflict
// through unchanged.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// Message returns the client-facing message of a classified error, or the
// full error text otherwise.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
