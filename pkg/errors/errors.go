package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Request errors
	ErrorCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeAssetNotFound    ErrorCode = "ASSET_NOT_FOUND"
	ErrorCodeRateLimit        ErrorCode = "RATE_LIMIT_ERROR"
	ErrorCodePayloadTooLarge  ErrorCode = "PAYLOAD_TOO_LARGE"

	// Remote asset backend errors
	ErrorCodeBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	ErrorCodeBackend            ErrorCode = "BACKEND_ERROR"
	ErrorCodeBackendDecode      ErrorCode = "BACKEND_DECODE_ERROR"

	// Technical errors
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	ErrorCodeDatabase ErrorCode = "DATABASE_ERROR"
	ErrorCodeTimeout  ErrorCode = "TIMEOUT_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     error                  `json:"-"`
	Timestamp time.Time              `json:"timestamp"`
	// Status overrides the status derived from Code when non-zero.
	Status int `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error wrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ToJSON converts the error to the JSON body sent to the dashboard
func (e *AppError) ToJSON() []byte {
	details := e.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	data, _ := json.Marshal(map[string]interface{}{
		"error":   e.Message,
		"code":    e.Code,
		"details": details,
	})
	return data
}

// GetHTTPStatus returns the appropriate HTTP status code for the error
func (e *AppError) GetHTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Code {
	case ErrorCodeValidation, ErrorCodeBadRequest, ErrorCodeInvalidJSON, ErrorCodeInvalidParameter:
		return http.StatusBadRequest
	case ErrorCodeNotFound, ErrorCodeAssetNotFound:
		return http.StatusNotFound
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrorCodeBackendUnavailable, ErrorCodeBackend, ErrorCodeBackendDecode:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Details:   make(map[string]interface{}),
		Timestamp: time.Now(),
	}
}

// NewAppErrorWithCause creates a new application error with an underlying cause
func NewAppErrorWithCause(code ErrorCode, message string, cause error) *AppError {
	err := NewAppError(code, message)
	err.Cause = cause
	return err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithStatus pins the HTTP status returned for the error
func (e *AppError) WithStatus(status int) *AppError {
	e.Status = status
	return e
}

// Predefined error constructors for common cases

// ValidationError creates a validation error
func ValidationError(message string) *AppError {
	return NewAppError(ErrorCodeValidation, message)
}

// ValidationErrors creates a validation error listing every problem
func ValidationErrors(message string, problems []string) *AppError {
	return NewAppError(ErrorCodeValidation, message).WithDetail("errors", problems)
}

// NotFoundError creates a not found error
func NotFoundError(resource string) *AppError {
	return NewAppError(ErrorCodeNotFound, fmt.Sprintf("%s not found", resource))
}

// UnauthorizedError is returned when a request carries no token to forward
func UnauthorizedError() *AppError {
	return NewAppError(ErrorCodeUnauthorized, "authorization token is required")
}

// DatabaseError creates a database error
func DatabaseError(message string, cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeDatabase, message, cause)
}

// InternalError creates an internal server error
func InternalError(message string, cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeInternal, message, cause)
}

// BackendError reports a failed call to the remote asset backend. Client
// errors keep the backend status; anything else becomes 502.
func BackendError(code ErrorCode, backendStatus int, message string, cause error) *AppError {
	err := NewAppErrorWithCause(code, message, cause)
	if backendStatus >= 400 && backendStatus < 500 {
		err.Status = backendStatus
	}
	if backendStatus != 0 {
		err.WithDetail("backendStatus", backendStatus)
	}
	return err
}

// BadRequestError creates a bad request error
func BadRequestError(message string) *AppError {
	return NewAppError(ErrorCodeBadRequest, message)
}

// InvalidJSONError creates an invalid JSON error
func InvalidJSONError(cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeInvalidJSON, "Invalid JSON format", cause)
}

// PayloadTooLargeError is returned when a request body exceeds limit bytes
func PayloadTooLargeError(limit int64) *AppError {
	return NewAppError(ErrorCodePayloadTooLarge, "request body is too large").WithDetail("limitBytes", limit)
}

// TimeoutError reports a request that ran out of time
func TimeoutError(cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeTimeout, "request timed out", cause)
}

// Error handling utilities

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}

// WrapError wraps a generic error as an internal error
func WrapError(err error, message string) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return NewAppErrorWithCause(ErrorCodeInternal, message, err)
}
