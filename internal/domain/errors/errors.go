package errors

import (
	"maps"
	"net/http"

	"stampcard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int           // HTTP status code
	ErrorCode() string       // Business error code
	Message() string         // User-friendly error message
	Details() string         // Detailed error information (optional)
	Context() map[string]any // Machine-usable fields merged into 4xx bodies (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	context   map[string]any
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors derived from the same predefined error by business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
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

// Context returns the machine-usable fields attached to the error
func (e *BaseError) Context() map[string]any {
	return e.context
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := e.clone()
	cloned.details = details

	return cloned
}

// WithMessage replaces the user-facing message, keeping code and status
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := e.clone()
	cloned.message = message

	return cloned
}

// WithContext attaches a machine-usable field, e.g. available_stamps
func (e *BaseError) WithContext(key string, value any) *BaseError {
	cloned := e.clone()
	if cloned.context == nil {
		cloned.context = make(map[string]any, 1)
	}
	cloned.context[key] = value

	return cloned
}

func (e *BaseError) clone() *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
		context:   maps.Clone(e.context),
	}
}

// Predefined error types
var (
	// Authentication and authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrCrossTenantViolation = NewBaseError(
		http.StatusForbidden,
		"CROSS_TENANT_VIOLATION",
		"Customer does not belong to this location's business",
		"",
	)

	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrCustomerBlocked = NewBaseError(
		http.StatusForbidden,
		"CUSTOMER_BLOCKED",
		"Customer is blocked",
		"",
	)

	ErrCustomerInactive = NewBaseError(
		http.StatusForbidden,
		"CUSTOMER_INACTIVE",
		"Customer is not active",
		"",
	)

	ErrCustomerCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CUSTOMER_CREATION_FAILED",
		"Failed to register customer",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrInvalidLocation = NewBaseError(
		http.StatusNotFound,
		"INVALID_LOCATION",
		"Location does not belong to an active business",
		"",
	)

	// Ledger-related errors
	ErrInsufficientBalance = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_BALANCE",
		"Insufficient stamps",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
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

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// NewValidationError returns a validation error with a specific message
func NewValidationError(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// NewInsufficientBalanceError reports available versus required stamps
func NewInsufficientBalanceError(available, required int) *BaseError {
	return ErrInsufficientBalance.
		WithContext("available_stamps", available).
		WithContext("required_stamps", required)
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

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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

// Context returns nil; database failures never expose fields
func (e *DatabaseExecuteError) Context() map[string]any {
	return nil
}
