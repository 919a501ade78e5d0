package errors

import (
	"net/http"

	"yasen/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrNoFieldsToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NO_FIELDS_TO_UPDATE",
		"No fields to update",
		"",
	)

	ErrInvalidPhotoData = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHOTO_DATA",
		"Invalid base64 photo data",
		"",
	)

	ErrInvalidAudioData = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AUDIO_DATA",
		"Invalid base64 audio data",
		"",
	)

	// Verification-related errors
	ErrCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"CODE_INVALID",
		"Invalid or expired code",
		"",
	)

	// Not-found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	ErrMeasurementNotFound = NewBaseError(
		http.StatusNotFound,
		"MEASUREMENT_NOT_FOUND",
		"Measurement not found",
		"",
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"Photo not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Chat session not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Authorization errors
	ErrAdminUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"ADMIN_UNAUTHORIZED",
		"Invalid admin token",
		"",
	)

	// Dispatch errors
	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"",
	)

	ErrUnsupportedAction = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_ACTION",
		"Unsupported action",
		"",
	)

	// Upstream-dependency errors
	ErrUpstreamFailed = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILED",
		"Upstream provider request failed",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILED",
		"Object storage request failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// NewStorageError classifies a failed object storage write as a 502 so
// clients can tell an upstream outage from their own bad input.
func NewStorageError(detail string) AppError {
	return NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILED",
		"Storage service unavailable",
		detail,
	)
}

// UpstreamError carries detail from a failed outbound provider call while
// keeping the 502 classification. The provider detail is surfaced in the
// message the way the original endpoints reported it.
type UpstreamError struct {
	provider string
	detail   string
}

// NewUpstreamError creates an upstream provider error
func NewUpstreamError(provider, detail string) AppError {
	return &UpstreamError{provider: provider, detail: detail}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.provider + " error: " + e.detail
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.provider + " error: " + e.detail
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.detail
}
