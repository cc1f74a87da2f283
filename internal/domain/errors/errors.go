package errors

import (
	"net/http"
	"sync"

	"knect/internal/errors"
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

//nolint:gochecknoglobals
var registry sync.Map

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// newRegistered creates a predefined error that can be recovered from its code with FromCode.
func newRegistered(httpCode int, errorCode, message string) *BaseError {
	e := NewBaseError(httpCode, errorCode, message, "")
	registry.Store(errorCode, e)

	return e
}

// FromCode returns the predefined error for a wire error code.
func FromCode(code string) (*BaseError, bool) {
	v, ok := registry.Load(code)
	if !ok {
		return nil, false
	}

	return v.(*BaseError), true
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

// Is matches copies produced by WithDetails against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Connection protocol errors
	ErrInvalidToken = newRegistered(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"This is not a Knect Pass.",
	)

	ErrSelfScan = newRegistered(
		http.StatusUnprocessableEntity,
		"SELF_SCAN",
		"You can't connect with yourself.",
	)

	ErrUnknownUser = newRegistered(
		http.StatusNotFound,
		"UNKNOWN_USER",
		"User profile not found.",
	)

	ErrStorageWriteFailed = newRegistered(
		http.StatusInternalServerError,
		"STORAGE_WRITE_FAILED",
		"Could not save the connection. Please try again.",
	)

	ErrAuthRequired = newRegistered(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Please sign in to continue.",
	)

	ErrNetworkFailure = newRegistered(
		http.StatusServiceUnavailable,
		"NETWORK_FAILURE",
		"The service is unreachable. Check your connection and try again.",
	)

	ErrInvalidPair = newRegistered(
		http.StatusBadRequest,
		"INVALID_PAIR",
		"A connection must be two mirrored records that include you.",
	)

	ErrConnectionNotFound = newRegistered(
		http.StatusNotFound,
		"CONNECTION_NOT_FOUND",
		"Connection not found.",
	)

	// Profile errors
	ErrProfileNotFound = newRegistered(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found.",
	)

	ErrProfileUpdateFailed = newRegistered(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Could not save the profile.",
	)

	ErrAvatarTooLarge = newRegistered(
		http.StatusRequestEntityTooLarge,
		"AVATAR_TOO_LARGE",
		"The image is too large.",
	)

	ErrAvatarUploadFailed = newRegistered(
		http.StatusInternalServerError,
		"AVATAR_UPLOAD_FAILED",
		"Could not upload the image.",
	)

	// Account errors
	ErrUserNotFound = newRegistered(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
	)

	ErrUserAlreadyExists = newRegistered(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered.",
	)

	ErrUserCreationFailed = newRegistered(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Could not create the account.",
	)

	ErrInvalidCredentials = newRegistered(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password.",
	)

	ErrRefreshTokenInvalid = newRegistered(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Your session has expired. Please sign in again.",
	)

	ErrPasswordHashFailed = newRegistered(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed.",
	)

	// Device errors
	ErrDeviceNotFound = newRegistered(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found.",
	)

	ErrDeviceForbidden = newRegistered(
		http.StatusForbidden,
		"DEVICE_FORBIDDEN",
		"You do not have access to this device.",
	)

	// General errors
	ErrValidationFailed = newRegistered(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
	)

	ErrTransactionFailed = newRegistered(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
	)

	ErrInternalError = newRegistered(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later.",
	)

	ErrForbidden = newRegistered(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
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

// Unwrap exposes the driver error.
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
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
