package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Source identifies this service in outbound notices.
const Source = "asset-dashboard-api"

// Level represents the severity level of a notice
type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

// Notifier sends notices to the external notification service
type Notifier interface {
	Send(ctx context.Context, notice Notice) error
	IsHealthy(ctx context.Context) bool
}

// Config holds configuration for the notification client
type Config struct {
	URL            string
	Timeout        time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	MaxPayloadSize int64
}

// DefaultConfig returns a default configuration for the notification client
func DefaultConfig(url string) Config {
	return Config{
		URL:            url,
		Timeout:        10 * time.Second,
		RetryAttempts:  3,
		RetryDelay:     time.Second,
		MaxPayloadSize: 1024 * 1024, // 1MB
	}
}

// Notice is the payload posted to the notification service
type Notice struct {
	Level     Level             `json:"level"`
	AssetID   int               `json:"assetId"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp,omitempty"`
	Source    string            `json:"source,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the notice is valid
func (n *Notice) Validate() error {
	if n.Level == "" {
		return fmt.Errorf("notice level is required")
	}
	switch n.Level {
	case LevelInfo, LevelWarning, LevelError, LevelCritical:
	default:
		return fmt.Errorf("invalid notice level: %s", n.Level)
	}
	if n.AssetID <= 0 {
		return fmt.Errorf("notice asset id must be positive")
	}
	if n.Message == "" {
		return fmt.Errorf("notice message is required")
	}
	if len(n.Message) > 1000 {
		return fmt.Errorf("notice message too long (max 1000 characters)")
	}
	return nil
}

// permanentError marks a failure that another attempt cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error { return &permanentError{err: err} }

// IsPermanent reports whether err was not retried.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

type client struct {
	config Config
	http   *http.Client
	logger zerolog.Logger
}

// New creates a Notifier. With an empty URL the returned Notifier logs
// notices and drops them.
func New(config Config, logger zerolog.Logger) Notifier {
	logger = logger.With().Str("component", "notifier").Logger()
	if config.URL == "" {
		return discard{logger: logger}
	}
	return &client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Send posts a notice, retrying transient failures with linear backoff.
func (c *client) Send(ctx context.Context, notice Notice) error {
	if err := notice.Validate(); err != nil {
		return permanent(fmt.Errorf("invalid notice: %w", err))
	}
	if notice.Timestamp.IsZero() {
		notice.Timestamp = time.Now().UTC()
	}
	if notice.Source == "" {
		notice.Source = Source
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return permanent(fmt.Errorf("failed to marshal notice: %w", err))
	}
	if int64(len(payload)) > c.config.MaxPayloadSize {
		return permanent(fmt.Errorf("notice payload too large: %d bytes (max %d)", len(payload), c.config.MaxPayloadSize))
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
		}

		lastErr = c.post(ctx, payload)
		if lastErr == nil {
			return nil
		}
		c.logger.Warn().Err(lastErr).
			Int("attempt", attempt+1).
			Int("asset_id", notice.AssetID).
			Msg("notice send attempt failed")
		if IsPermanent(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("failed to send notice after %d attempts: %w", c.config.RetryAttempts+1, lastErr)
}

func (c *client) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", Source+"/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("notification service returned error status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return permanent(err)
		}
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("unexpected status code from notification service")
	}
	return nil
}

// IsHealthy checks if the notification service answers below 500
func (c *client) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.URL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", Source+"/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}

type discard struct {
	logger zerolog.Logger
}

func (d discard) Send(_ context.Context, notice Notice) error {
	if err := notice.Validate(); err != nil {
		return permanent(fmt.Errorf("invalid notice: %w", err))
	}
	d.logger.Info().
		Str("level", string(notice.Level)).
		Int("asset_id", notice.AssetID).
		Str("message", notice.Message).
		Msg("notifier disabled, dropping notice")
	return nil
}

func (d discard) IsHealthy(context.Context) bool { return true }
