package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound = NewResourceNotFoundError("Student not found.")
	ErrRegNoExists     = NewConflictError("Registration number already exists.")
	ErrInvalidRegNo    = NewValidationError("Invalid registration number.")
)

// Faculty errors
var (
	ErrFacultyNotFound  = NewResourceNotFoundError("Faculty not found.")
	ErrInvalidFacultyID = NewValidationError("Invalid faculty ID.")
)

// ErrNoValidFields is returned when a partial update names no allow-listed field.
var ErrNoValidFields = NewValidationError("No valid fields.")

// NewResourceNotFoundError creates a not-found error with a client-safe message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a client-safe message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a validation error with a client-safe message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with a message that is safe to show clients
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// PublicMessage returns the client-facing message carried by err, if any.
func PublicMessage(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}
