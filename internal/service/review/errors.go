package review

import (
	"errors"
	"fmt"
)

// ErrCardNotFound indicates no card exists for the given item ID.
var ErrCardNotFound = errors.New("vocabulary card not found")

// ServiceError wraps a scheduler failure with the operation that produced it.
// Unwrap exposes the underlying error so callers can match sentinels with
// errors.Is.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
