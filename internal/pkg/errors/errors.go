package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Err:     e.Err,
	}
}

// Common errors
var (
	// 400 Bad Request
	ErrBadRequest   = New(http.StatusBadRequest, "malformed request")
	ErrValidation   = New(http.StatusBadRequest, "validation failed")
	ErrNotConfirmed = New(http.StatusBadRequest, "destructive action requires explicit confirmation")
	ErrNoImages     = New(http.StatusBadRequest, "at least one image is required")
	ErrInvalidPrice = New(http.StatusBadRequest, "price must be a non-negative integer")

	// 401 Unauthorized
	ErrUnauthorized    = New(http.StatusUnauthorized, "authentication required")
	ErrInvalidToken    = New(http.StatusUnauthorized, "invalid token")
	ErrTokenExpired    = New(http.StatusUnauthorized, "token has expired")
	ErrInvalidPassword = New(http.StatusUnauthorized, "invalid username or password")

	// 403 Forbidden
	ErrForbidden        = New(http.StatusForbidden, "access denied")
	ErrPermissionDenied = New(http.StatusForbidden, "insufficient permissions")
	ErrNotOwner         = New(http.StatusForbidden, "only the owner may modify this listing")
	ErrNotLister        = New(http.StatusForbidden, "only lister accounts can publish rooms")

	// 404 Not Found
	ErrNotFound     = New(http.StatusNotFound, "resource not found")
	ErrUserNotFound = New(http.StatusNotFound, "user not found")
	ErrRoomNotFound = New(http.StatusNotFound, "room not found")

	// 409 Conflict
	ErrConflict       = New(http.StatusConflict, "resource conflict")
	ErrUsernameExists = New(http.StatusConflict, "username already taken")
	ErrEmailExists    = New(http.StatusConflict, "email already registered")

	// 429 Too Many Requests
	ErrTooManyRequests = New(http.StatusTooManyRequests, "too many requests, slow down")

	// 502 Bad Gateway
	ErrStorageGateway = New(http.StatusBadGateway, "object storage is unavailable")

	// 500 Internal Server Error
	ErrInternal = New(http.StatusInternalServerError, "internal server error")
)

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetHTTPStatus returns the HTTP status code for an error
func GetHTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// GetMessage returns the error message
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
