// Package api is the HTTP client for the storefront backend's admin
// surface. Authentication rides on the same-site session cookie; the
// legacy bearer-token transport of earlier console builds is not
// supported.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"go.uber.org/zap"
)

// genericMessage is used when an error response carries no usable message.
const genericMessage = "something went wrong"

// StatusError is a non-success HTTP response translated into a failure
// carrying the human-readable message from the body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized
}

// Client talks to the backend over HTTPS relative to a configured base
// URL, with a cookie jar carrying the credentialed session.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	// onUnauthorized fires once per 401 response; the console wires it
	// to a full session reset.
	onUnauthorized func()
}

// NewClient creates a client for the given base URL, e.g.
// "https://api.example.com/api/v1".
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// SetUnauthorizedHook registers the global 401 handler. Authorization
// failures are the only error class with a side effect beyond the
// failing call.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// request performs one JSON round trip. A nil body sends no payload; out,
// when non-nil, receives the decoded response body.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug("Request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return &StatusError{Code: resp.StatusCode, Message: extractMessage(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unexpected response shape from %s: %w", endpoint, err)
		}
	}
	return nil
}

// extractMessage pulls the server-provided error text from either the
// "message" or the legacy "msg" field.
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Msg != "" {
			return body.Msg
		}
	}
	return genericMessage
}
