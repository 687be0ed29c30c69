package middleware

import (
	"asset-dashboard-api/internal/config"
	apperrors "asset-dashboard-api/pkg/errors"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		RateLimitRPS:   1,
		RateLimitBurst: 2,
		RequestTimeout: time.Second,
		EnableCORS:     true,
		AllowedOrigins: []string{"https://dash.example.com"},
		TrustedProxies: []string{"10.0.0.1"},
	}
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimit_PerClient(t *testing.T) {
	sm := NewSecurityMiddleware(testSecurityConfig())
	handler := sm.TrustedProxy(sm.RateLimit(ok))

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("192.0.2.1:1000"))
	assert.Equal(t, http.StatusOK, call("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("192.0.2.1:1002"))
	assert.Equal(t, http.StatusOK, call("192.0.2.2:1000"))
}

func TestRateLimit_JSONBody(t *testing.T) {
	cfg := testSecurityConfig()
	cfg.RateLimitBurst = 1
	sm := NewSecurityMiddleware(cfg)
	handler := sm.RateLimit(ok)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.ErrorCodeRateLimit), body["code"])
	assert.Equal(t, map[string]interface{}{}, body["details"])
}

func TestCORS(t *testing.T) {
	sm := NewSecurityMiddleware(testSecurityConfig())
	handler := sm.CORS(ok)

	t.Run("allowed origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/assets", nil)
		req.Header.Set("Origin", "https://dash.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://dash.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestTrustedProxy_ResolvesForwardedFor(t *testing.T) {
	sm := NewSecurityMiddleware(testSecurityConfig())

	var got string
	handler := sm.TrustedProxy(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClientIP(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.9", got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "198.51.100.4", got)
}

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	sm := NewSecurityMiddleware(testSecurityConfig())

	var hasDeadline bool
	handler := sm.RequestTimeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hasDeadline)
}

func TestSecurityHeaders(t *testing.T) {
	sm := NewSecurityMiddleware(testSecurityConfig())
	rr := httptest.NewRecorder()
	sm.SecurityHeaders(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}

func TestLogRequests(t *testing.T) {
	var buf bytes.Buffer
	lm := NewLoggingMiddleware(zerolog.New(&buf))

	handler := lm.LogRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets?x=1", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/assets", entry["path"])
	assert.Equal(t, float64(http.StatusBadGateway), entry["status"])
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	lm := NewLoggingMiddleware(zerolog.New(&buf))

	handler := lm.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), string(apperrors.ErrorCodeInternal))
	assert.Contains(t, buf.String(), "handler panicked")
}
