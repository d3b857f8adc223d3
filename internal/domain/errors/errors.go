// Package errors defines the application error taxonomy. Validation,
// not-found and authorization failures are returned as structured values and
// handled at the delivery boundary; they never escalate.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Validation errors: rejected before touching the store.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrRegionRequired = NewBaseError(
		http.StatusBadRequest,
		"REGION_REQUIRED",
		"State/region required for rider",
		"",
	)

	// Not-found errors: referenced entity absent.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrWorkerNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKER_NOT_FOUND",
		"Worker not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Workflow precondition failures.
	ErrWorkerNotApproved = NewBaseError(
		http.StatusNotFound,
		"WORKER_NOT_APPROVED",
		"Worker not found or not approved",
		"",
	)

	ErrWorkerNotAdmin = NewBaseError(
		http.StatusNotFound,
		"WORKER_NOT_ADMIN",
		"User not found or not an admin",
		"",
	)

	ErrOrderTransition = NewBaseError(
		http.StatusConflict,
		"ORDER_TRANSITION",
		"Order status can only advance forward",
		"",
	)

	// Authorization errors.
	ErrAdminOnly = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ONLY",
		"Only admins can perform this action",
		"",
	)

	ErrSuperAdminOnly = NewBaseError(
		http.StatusForbidden,
		"SUPER_ADMIN_ONLY",
		"Only the super admin can perform this action",
		"",
	)

	// Remote storage errors: token exchange or object-storage call failed
	// after the single retry.
	ErrRemoteService = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_SERVICE_FAILED",
		"Remote storage service call failed",
		"",
	)

	// Local persistence errors.
	ErrPersistence = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"Failed to persist the document",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
