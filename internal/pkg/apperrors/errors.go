package apperrors

import "errors"

// Domain errors surfaced to API callers with a machine-readable kind.
var (
	// Resource errors
	ErrNotFound              = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Input / state errors
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidState   = errors.New("invalid state")
	ErrAmountMismatch = errors.New("amount mismatch")

	// Dashboard errors
	ErrAggregationFailed = errors.New("aggregation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// Entity-specific errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrFacultyNotFound    = errors.New("faculty member not found")
	ErrFeeNotFound        = errors.New("fee not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrMarksNotFound      = errors.New("marks record not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrFeeAlreadyPaid    = errors.New("fee already paid")
	ErrAlreadyEnrolled   = errors.New("student already enrolled in course")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping the given sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewNotFoundError creates a CustomError for a missing resource
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a CustomError for conflict situations
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewInvalidInputError creates a CustomError for malformed or missing input
func NewInvalidInputError(message string) error {
	return &CustomError{Err: ErrInvalidInput, Message: message}
}

// NewInvalidStateError creates a CustomError for an entity in an unexpected status
func NewInvalidStateError(message string) error {
	return &CustomError{Err: ErrInvalidState, Message: message}
}

// NewAmountMismatchError creates a CustomError for a payment amount mismatch
func NewAmountMismatchError(message string) error {
	return &CustomError{Err: ErrAmountMismatch, Message: message}
}
