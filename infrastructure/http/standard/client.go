// ABOUTME: Standard HTTP client used by the remote search client and CLI
// ABOUTME: Retries idempotent GETs with exponential backoff and forwards request IDs

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"profile-search-api/core/interfaces"
	"profile-search-api/pkg/requestid"
)

const (
	maxRetries = 3
	userAgent  = "ProfileSearchAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// Searches can run for minutes, so the timeout should exceed the server's tool timeout.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request, retrying on 5xx and transport errors
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := c.newRequest(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors. The last 5xx is returned as is.
		if resp.StatusCode < 500 || attempt == maxRetries-1 {
			return newResponse(resp), nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return nil, lastErr
}

// Post performs an HTTP POST request with a JSON body. It is never retried
// because every attempt starts another tool run on the server.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return newResponse(resp), nil
}

func (c *StandardHTTPClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if id := requestid.From(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	return req, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func newResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
