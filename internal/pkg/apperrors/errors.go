package apperrors

import "errors"

// Common errors
var (
	// Source errors
	ErrSourceUnavailable = errors.New("rank sheet unavailable")
	ErrSourceMalformed   = errors.New("rank sheet malformed")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Export errors
	ErrNoData         = errors.New("no data to download")
	ErrResultNotFound = errors.New("result not found or expired")
)

// NewValidationError creates a validation error whose message is shown to the user verbatim
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
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

// UserMessage returns the message carried by a CustomError anywhere in the chain.
// Falls back to err.Error() for plain errors.
func UserMessage(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Error()
	}
	return err.Error()
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
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
