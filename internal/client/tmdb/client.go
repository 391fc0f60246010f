// Package tmdb is the HTTP client for the remote movie catalog service.
// It covers the three concerns the rest of the application needs: the
// authentication handshake, catalog reads, and rating writes. Every call is
// a direct request/response mapping with no local state and no retries.
//
// Service conventions: all endpoints speak JSON, every request carries the
// api_key query parameter, and authenticated requests carry the session
// token as the session_id query parameter.
package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/kan-1337/movie-explorer/internal/common"
	"github.com/kan-1337/movie-explorer/internal/logging"
)

// Client issues requests against one catalog service endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger
}

// New builds a Client for the given base URL and API key. The timeout bounds
// each individual request in addition to the caller's context.
func New(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "tmdb"),
	}
}

// statusPayload is the service's error (and write-acknowledgement) shape.
type statusPayload struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// do executes one request and decodes the response into out (when non-nil).
//
// Error mapping:
//   - transport failure: error matching common.ErrUnavailable, cause retained;
//   - non-2xx status: *APIError carrying the decoded remote status message;
//   - decode failure on a 2xx body: plain wrapped error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(ctx, resp.StatusCode, respBody, requestID)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) apiError(ctx context.Context, httpStatus int, body []byte, requestID string) error {
	apiErr := &APIError{HTTPStatus: httpStatus, StatusMessage: http.StatusText(httpStatus)}

	var status statusPayload
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		apiErr.StatusCode = status.StatusCode
		apiErr.StatusMessage = status.StatusMessage
	}

	c.log.Debug(ctx, "request rejected",
		"http_status", httpStatus, "message", apiErr.StatusMessage, "request_id", requestID)
	return apiErr
}

func withSession(sessionID string) url.Values {
	q := url.Values{}
	q.Set("session_id", sessionID)
	return q
}
