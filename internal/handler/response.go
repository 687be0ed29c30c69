package handler

import (
	"context"
	"net/http"
	"time"
)

// ResponseHelper provides common response utilities and context management
type ResponseHelper struct{}

// NewResponseHelper creates a new ResponseHelper instance
func NewResponseHelper() *ResponseHelper {
	return &ResponseHelper{}
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details"`
}

// DataResponse is the JSON body of every successful request
type DataResponse struct {
	Data interface{} `json:"data"`
}

// CreateRequestContext bounds the work done for r by timeout
func (rh *ResponseHelper) CreateRequestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}

// RequestID returns the caller supplied X-Request-ID, if any
func RequestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get("X-Request-ID")
}

// Token returns the caller's Authorization header verbatim. It is forwarded
// to the backend unchanged.
func (rh *ResponseHelper) Token(r *http.Request) string {
	return r.Header.Get("Authorization")
}

// CreateHealthCheckData creates health check response data
func (rh *ResponseHelper) CreateHealthCheckData(checks map[string]string) map[string]interface{} {
	status := "healthy"
	for _, result := range checks {
		if result != "ok" {
			status = "degraded"
		}
	}
	return map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"service":   "asset-dashboard-api",
		"status":    status,
		"checks":    checks,
	}
}
