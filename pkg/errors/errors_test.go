package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_GetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"validation", ValidationError("bad"), http.StatusBadRequest},
		{"invalid json", InvalidJSONError(nil), http.StatusBadRequest},
		{"unauthorized", UnauthorizedError(), http.StatusUnauthorized},
		{"not found", NotFoundError("annotation"), http.StatusNotFound},
		{"asset not found", NewAppError(ErrorCodeAssetNotFound, "asset not found"), http.StatusNotFound},
		{"database", DatabaseError("boom", nil), http.StatusInternalServerError},
		{"backend unavailable", BackendError(ErrorCodeBackendUnavailable, 0, "down", nil), http.StatusBadGateway},
		{"backend client error passes through", BackendError(ErrorCodeBackend, http.StatusNotFound, "missing", nil), http.StatusNotFound},
		{"backend server error becomes bad gateway", BackendError(ErrorCodeBackend, http.StatusServiceUnavailable, "busy", nil), http.StatusBadGateway},
		{"backend decode", BackendError(ErrorCodeBackendDecode, 0, "garbled", nil), http.StatusBadGateway},
		{"payload too large", PayloadTooLargeError(1024), http.StatusRequestEntityTooLarge},
		{"timeout", TimeoutError(nil), http.StatusGatewayTimeout},
		{"rate limit", NewAppError(ErrorCodeRateLimit, "slow down"), http.StatusTooManyRequests},
		{"explicit status", InternalError("x", nil).WithStatus(http.StatusTeapot), http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.GetHTTPStatus())
		})
	}
}

func TestAppError_ToJSON(t *testing.T) {
	err := ValidationErrors("invalid warranty", []string{"provider is required"})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(err.ToJSON(), &body))

	assert.Equal(t, "invalid warranty", body["error"])
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, map[string]interface{}{"errors": []interface{}{"provider is required"}}, body["details"])
}

func TestAppError_ToJSON_EmptyDetailsIsObject(t *testing.T) {
	err := &AppError{Code: ErrorCodeInternal, Message: "x"}
	assert.JSONEq(t, `{"error":"x","code":"INTERNAL_ERROR","details":{}}`, string(err.ToJSON()))
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NotFoundError("annotation")
	wrapped := fmt.Errorf("delete: %w", inner)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestWrapError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	wrapped := WrapError(cause, "failed to save")

	assert.Equal(t, ErrorCodeInternal, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause)

	existing := BadRequestError("nope")
	assert.Same(t, existing, WrapError(existing, "ignored"))
}
