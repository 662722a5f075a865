package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrUnavailable wraps transport failures: connection refused, timeouts, broken bodies.
	ErrUnavailable = errors.New("timesheet backend unavailable")
	// ErrNotFound matches any 404 APIError through errors.Is.
	ErrNotFound = errors.New("resource not found on timesheet backend")
)

// APIError is a non-success response from the timesheet backend
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is lets callers test errors.Is(err, ErrNotFound) without unwrapping.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks JSON to the timesheet backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. A zero timeout disables the per-request deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend root
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("Calling timesheet backend", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Timesheet backend call failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Message:    readErrorMessage(resp),
		}
		slog.Warn("Timesheet backend rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s %s response: %v", ErrUnavailable, method, path, err)
	}
	return nil
}

// readErrorMessage extracts {"error": "..."} from a failed response, falling back
// to the status text.
func readErrorMessage(resp *http.Response) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &errResp); err == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	return fmt.Sprintf("HTTP error %d", resp.StatusCode)
}
