// Package errors holds the errors the API renders to clients. Each carries an
// HTTP status, a stable machine code, and a message safe to show.
package errors

import (
	"net/http"

	"azan/internal/errors"
)

// AppError is an error with a client-facing rendering.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional and never rendered for 5xx responses.
	Details() string
}

// BaseError is a fixed AppError.
type BaseError struct {
	status  int
	code    string
	message string
}

func newError(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return "" }

// WrapMessage annotates e with context while keeping it matchable with As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	ErrInvalidDeviceToken       = newError(http.StatusBadRequest, "INVALID_DEVICE_TOKEN", "Device token is required")
	ErrInvalidPlatform          = newError(http.StatusBadRequest, "INVALID_PLATFORM", "Platform must be ios or android")
	ErrDeviceRegistrationFailed = newError(http.StatusInternalServerError, "DEVICE_REGISTRATION_FAILED", "Failed to register device")

	ErrAnnouncementAudioRequired = newError(http.StatusBadRequest, "ANNOUNCEMENT_AUDIO_REQUIRED", "Announcement audio URL is required")
	ErrBroadcastFailed           = newError(http.StatusBadGateway, "BROADCAST_FAILED", "Failed to broadcast to connected clients")

	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInternalError    = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError reports a failed statement. The driver error stays
// reachable through Unwrap but is never rendered.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error from the statement described by details.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
