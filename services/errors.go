package services

import (
	"errors"
	"log"
)

// Sentinel errors translated to HTTP status codes at the handler boundary.
var (
	// ErrStoreUnavailable means no connection string is configured or
	// the document store could not be reached.
	ErrStoreUnavailable = errors.New("database not configured")

	// ErrNotFound means no document matched the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID means the identifier is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid identifier")
)

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// OperationError wraps an unexpected store error, carrying the original
// message for the response payload.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *OperationError) Unwrap() error { return e.Err }

// fail logs the full diagnostic server-side and returns the wrapped
// operation error. Store errors never propagate raw out of a service.
func fail(op string, err error) error {
	log.Printf("%s failed: %v", op, err)
	return &OperationError{Op: op, Err: err}
}
