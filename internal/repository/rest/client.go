// Package rest implements every domain repository interface against the HR
// backend's /api surface. One client, one attempt per call: no retries, no
// deduplication, timeout from configuration.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrsuite/hrsuite-console/internal/domain/auth"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store

	mu             sync.RWMutex
	onUnauthorized func()
}

// NewClient builds a client rooted at baseURL (without the /api suffix).
func NewClient(baseURL string, timeout time.Duration, sessions session.Store) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
	}
}

// OnUnauthorized registers the hook fired after a 401 response has cleared
// the session store. The shell uses it to force navigation to the login view.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// APIError is any HTTP failure the backend reported, carrying its message
// when one was provided. A 401 additionally matches auth.ErrSessionExpired
// through errors.Is, so callers can branch on expiry without losing the text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("hr backend error [%d]: %s", e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return auth.ErrSessionExpired
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach the bearer token when a session exists; without one the request
	// simply goes out unauthenticated.
	if s, err := c.sessions.Get(); err == nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	} else if !errors.Is(err, session.ErrNoSession) {
		return fmt.Errorf("reading session: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(data)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	return decodePayload(data, out)
}

// handleUnauthorized implements the global 401 interception: clear the
// session, fire the navigation hook, propagate the failure.
func (c *Client) handleUnauthorized(body []byte) error {
	_ = c.sessions.Clear()

	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()
	if hook != nil {
		hook()
	}

	return &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    providedMessage(body),
	}
}

// envelope is the response wrapper the backend uses.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	// The previous backend generation reported errors as {"detail": ...}.
	Detail string `json:"detail,omitempty"`
}

func decodePayload(data []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
		return nil
	}

	// Bare payload, no envelope.
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func providedMessage(data []byte) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	if env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	if env.Detail != "" {
		return env.Detail
	}
	return env.Message
}

func errorMessage(data []byte, statusCode int) string {
	if msg := providedMessage(data); msg != "" {
		return msg
	}
	return http.StatusText(statusCode)
}
