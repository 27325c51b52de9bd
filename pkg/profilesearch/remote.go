// ABOUTME: Remote client that calls a running profile search server
// ABOUTME: Maps HTTP problem responses back to library error types

package profilesearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"profile-search-api/core/interfaces"
)

// serverInternalMessage is the detail the server sends for failures it does not explain
const serverInternalMessage = "Internal server error"

// RemoteClient searches through the HTTP API instead of running the tool locally
type RemoteClient struct {
	baseURL    string
	httpClient interfaces.HTTPClient
}

// NewRemoteClient creates a client for the server at baseURL.
// A nil httpClient uses DefaultHTTPClient.
func NewRemoteClient(baseURL string, httpClient interfaces.HTTPClient) (*RemoteClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, NewError(ErrorTypeConfiguration, "base URL cannot be empty")
	}
	if httpClient == nil {
		httpClient = DefaultHTTPClient()
	}
	return &RemoteClient{baseURL: baseURL, httpClient: httpClient}, nil
}

type searchPayload struct {
	Username string   `json:"username"`
	Sites    []string `json:"sites,omitempty"`
}

type problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Search posts the request to /search on the server
func (c *RemoteClient) Search(ctx context.Context, username string, sites ...string) (*Result, error) {
	body, err := json.Marshal(searchPayload{Username: username, Sites: sites})
	if err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to encode request").WithCause(err)
	}

	resp, err := c.httpClient.Post(ctx, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, "search request failed").WithCause(err)
	}
	defer resp.Body().Close()

	data, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, "failed to read search response").WithCause(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errorFromResponse(resp.StatusCode(), data)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, NewError(ErrorTypeInternal, "invalid search response").WithCause(err)
	}
	if result.Links == nil {
		result.Links = []string{}
	}

	return &result, nil
}

// Health fetches /health from the server
func (c *RemoteClient) Health(ctx context.Context) (*HealthStatus, error) {
	resp, err := c.httpClient.Get(ctx, c.baseURL+"/health")
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, "health request failed").WithCause(err)
	}
	defer resp.Body().Close()

	data, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, "failed to read health response").WithCause(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errorFromResponse(resp.StatusCode(), data)
	}

	var status HealthStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, NewError(ErrorTypeInternal, "invalid health response").WithCause(err)
	}

	return &status, nil
}

// errorFromResponse maps a non-200 problem response to a library error
func errorFromResponse(status int, data []byte) error {
	var p problem
	_ = json.Unmarshal(data, &p)

	message := p.Detail
	if message == "" {
		message = p.Title
	}
	if message == "" {
		message = fmt.Sprintf("server returned %d", status)
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return NewError(ErrorTypeValidation, message)
	case status == http.StatusGatewayTimeout:
		return NewError(ErrorTypeTimeout, message)
	case status == http.StatusInternalServerError && p.Detail != "" && p.Detail != serverInternalMessage:
		// The server only explains a 500 when the tool is missing
		return NewError(ErrorTypeToolUnavailable, message)
	default:
		return NewError(ErrorTypeInternal, message)
	}
}
