package errors

import (
	"net/http"

	"quizmap/internal/errors"
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

// Predefined error types.
//
// The dedup taxonomy maps onto HTTP as: NotFound -> 404 (always non-fatal,
// "already resolved"), Conflict -> 409 ("reviewed by someone else"),
// InvalidArgument -> 400, Integrity -> 500 with full rollback.
var (
	// Venue-related errors
	ErrVenueNotFound = NewBaseError(
		http.StatusNotFound,
		"VENUE_NOT_FOUND",
		"Venue no longer exists or was already merged",
		"",
	)

	// Candidate-related errors
	ErrCandidateNotFound = NewBaseError(
		http.StatusNotFound,
		"CANDIDATE_NOT_FOUND",
		"Duplicate candidate no longer exists",
		"",
	)

	ErrCandidateAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"CANDIDATE_ALREADY_REVIEWED",
		"This pair was already reviewed by another session",
		"",
	)

	// Merge-related errors
	ErrFieldNotOverridable = NewBaseError(
		http.StatusBadRequest,
		"FIELD_NOT_OVERRIDABLE",
		"Requested field override is outside the allow-list",
		"",
	)

	ErrInvalidPair = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAIR",
		"Malformed venue pair identifiers",
		"",
	)

	ErrSamePairVenue = NewBaseError(
		http.StatusBadRequest,
		"SAME_PAIR_VENUE",
		"A venue cannot be merged with itself",
		"",
	)

	// Scan-related errors
	ErrScanRunNotFound = NewBaseError(
		http.StatusNotFound,
		"SCAN_RUN_NOT_FOUND",
		"Scan run not found",
		"",
	)

	ErrScanTriggerFailed = NewBaseError(
		http.StatusInternalServerError,
		"SCAN_TRIGGER_FAILED",
		"Failed to enqueue the candidate scan",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid admin token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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
