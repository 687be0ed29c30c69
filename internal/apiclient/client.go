package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds configuration for the backend client
type Config struct {
	BaseURL string
	// Timeout bounds the underlying http.Client. Zero means no limit.
	Timeout time.Duration
}

// Client joins relative request URLs to a fixed base address and sends them
// through a Doer.
type Client struct {
	baseURL string
	doer    Doer
}

// NewClient creates a Client backed by an http.Client built from cfg.
func NewClient(cfg Config) *Client {
	return NewClientWithDoer(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithDoer creates a Client that sends through doer.
func NewClientWithDoer(baseURL string, doer Doer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
	}
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one backend call. URL is relative to the client's base
// address. Headers are sent as given.
type Request struct {
	URL     string
	Method  string
	Body    any
	Headers map[string]string
}

// envelope is the backend's success shape. Data stays raw so a missing key
// can be told apart from an explicit value.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorBody is the backend's usual error shape; either field may be set.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

const maxErrorSnippet = 512

// Fetch performs req exactly once and returns the decoded data field of the
// response. It never returns an error value: every failure, including an
// unsupported method, is reported in Result.Err.
func Fetch[T any](ctx context.Context, c *Client, req Request) Result[T] {
	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return failure[T](KindTransport, 0, "unsupported method %q", req.Method)
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return failure[T](KindTransport, 0, "failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.resolve(req.URL), body)
	if err != nil {
		return failure[T](KindTransport, 0, "failed to create request: %v", err)
	}
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return failure[T](KindTransport, 0, "failed to send request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T](KindTransport, resp.StatusCode, "failed to read response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure[T](KindStatus, resp.StatusCode, "%s", statusMessage(resp.StatusCode, raw))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		var zero T
		return success(zero)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return failure[T](KindDecode, resp.StatusCode, "failed to decode response body: %v", err)
	}
	if env.Data == nil {
		return failure[T](KindDecode, resp.StatusCode, "response body has no data field")
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return failure[T](KindDecode, resp.StatusCode, "failed to decode response data: %v", err)
	}
	return success(data)
}

// resolve joins a relative URL to the base address with a single slash.
func (c *Client) resolve(rel string) string {
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	return c.baseURL + "/" + strings.TrimLeft(rel, "/")
}

func statusMessage(code int, raw []byte) string {
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}

	text := strings.TrimSpace(string(raw))
	if len(text) > maxErrorSnippet {
		text = text[:maxErrorSnippet]
	}
	if text == "" {
		return "backend returned " + http.StatusText(code)
	}
	return text
}
