package errors

import (
	"net/http"
	"strings"

	"garden/internal/errors"
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches predefined errors by code so WithDetails copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

var (
	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Account with username already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid Credentials",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_FOUND",
		"User does not exist",
		"",
	)

	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"Document does not exist",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item does not exist",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrProvisioningFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROVISIONING_FAILED",
		"Registration failed",
		"",
	)

	// ErrCatalogUnavailable aborts provisioning like any other persistence failure.
	ErrCatalogUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_UNAVAILABLE",
		"Registration failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Could not issue session token",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError carries itemized, user-correctable input problems.
type ValidationError struct {
	Items []string
}

// NewValidationError returns nil when there is nothing to report.
func NewValidationError(items ...string) error {
	if len(items) == 0 {
		return nil
	}

	return &ValidationError{Items: items}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Items, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return strings.Join(e.Items, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
