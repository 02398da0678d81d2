package errs

import (
	"errors"
	"fmt"
)

// ErrObjectAlreadyExists is the sentinel error for duplicate-identifier failures.
// Use errors.Is(err, ErrObjectAlreadyExists) to classify errors of this kind.
var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError indicates that an object with the same identifier
// is already stored. ParamName describes the identifier and ID carries its value.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without an underlying cause.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping
// an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the error message. The verbose form including the parameter name
// is used only when a cause is present.
func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID))
}

// Unwrap returns the sentinel ErrObjectAlreadyExists for errors.Is support.
func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
