// Package platform is the REST client for the plaza management
// backend. All requests flow through the authorizing transport, which
// attaches the session's bearer token and reports authorization-denied
// responses back to the session manager.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is the plaza backend API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL. The transport
// decides per request whether to attach the bearer token.
func NewClient(baseURL string, transport http.RoundTripper, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// doRequest performs an HTTP request and decodes the response into
// target when non-nil.
func (c *Client) doRequest(ctx context.Context, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return parseResponse(resp, target)
}

// backendError is the JSON error body the backend returns on failure.
type backendError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIError is a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Denied reports whether the response was an authorization denial.
func (e *APIError) Denied() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// parseResponse decodes the response into target, converting non-2xx
// statuses to APIError. The backend's own message is preserved so the
// UI can render it unchanged.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		message := ""
		var errResp backendError
		if err := json.Unmarshal(body, &errResp); err == nil {
			switch {
			case errResp.Message != "":
				message = errResp.Message
			case errResp.Error != "":
				message = errResp.Error
			}
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
