package handler

import (
	"asset-dashboard-api/internal/apiclient"
	"asset-dashboard-api/pkg/errors"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorHandler provides centralized error handling functionality for handlers
type ErrorHandler struct {
	Logger zerolog.Logger
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(logger zerolog.Logger) *ErrorHandler {
	return &ErrorHandler{
		Logger: logger,
	}
}

// SendErrorResponse sends a structured error response
func (e *ErrorHandler) SendErrorResponse(w http.ResponseWriter, statusCode int, message string, code errors.ErrorCode, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	e.SendJSONResponse(w, statusCode, ErrorResponse{
		Error:   message,
		Code:    string(code),
		Details: details,
	})
}

// SendDataResponse wraps data in the envelope the dashboard reads
func (e *ErrorHandler) SendDataResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	e.SendJSONResponse(w, statusCode, DataResponse{Data: data})
}

// SendJSONResponse sends a generic JSON response
func (e *ErrorHandler) SendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		e.Logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// HandleAppError maps service errors to HTTP responses. A deadline anywhere in
// the chain becomes a timeout; anything else that is not an AppError is
// reported as an internal error.
func (e *ErrorHandler) HandleAppError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if stderrors.Is(err, context.DeadlineExceeded) {
		err = errors.TimeoutError(err)
	}
	appErr := errors.WrapError(err, "failed to "+operation)
	status := appErr.GetHTTPStatus()

	event := e.Logger.Warn()
	if status >= http.StatusInternalServerError {
		event = e.Logger.Error()
	}
	if requestID := RequestID(r); requestID != "" {
		event = event.Str("request_id", requestID)
	}
	event.Err(err).Str("operation", operation).Int("status", status).Msg("request failed")

	e.SendErrorResponse(w, status, appErr.Message, appErr.Code, appErr.Details)
}

// HandleBackendFailure maps a failed backend call to an HTTP response
func (e *ErrorHandler) HandleBackendFailure(w http.ResponseWriter, r *http.Request, failure *apiclient.Failure, operation string) {
	e.HandleAppError(w, r, backendError(failure), operation)
}

func backendError(failure *apiclient.Failure) *errors.AppError {
	switch failure.Kind {
	case apiclient.KindTransport:
		return errors.BackendError(errors.ErrorCodeBackendUnavailable, 0, "asset backend is unavailable", failure)
	case apiclient.KindStatus:
		return errors.BackendError(errors.ErrorCodeBackend, failure.StatusCode, failure.Message, failure)
	default:
		return errors.BackendError(errors.ErrorCodeBackendDecode, 0, "asset backend returned an unreadable response", failure)
	}
}

// HandleJSONDecodeError handles request bodies that cannot be read or decoded.
// A body cut off by http.MaxBytesReader is answered with 413.
func (e *ErrorHandler) HandleJSONDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		e.HandleAppError(w, r, errors.PayloadTooLargeError(tooLarge.Limit), "read request body")
		return
	}
	e.HandleAppError(w, r, errors.InvalidJSONError(err), "decode request body")
}

// ParseAssetID parses the numeric backend asset id from a path segment
func (e *ErrorHandler) ParseAssetID(w http.ResponseWriter, idStr string) (int, bool) {
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		e.SendErrorResponse(w, http.StatusBadRequest, "asset id must be a positive integer", errors.ErrorCodeInvalidParameter, nil)
		return 0, false
	}
	return id, true
}

// ParseAnnotationID parses an annotation id from a path segment
func (e *ErrorHandler) ParseAnnotationID(w http.ResponseWriter, idStr string) (uuid.UUID, bool) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		e.SendErrorResponse(w, http.StatusBadRequest, "Invalid UUID format", errors.ErrorCodeInvalidParameter, nil)
		return uuid.Nil, false
	}
	return id, true
}
