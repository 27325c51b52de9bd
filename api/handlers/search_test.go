package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-search-api/core/domain"
	"profile-search-api/core/errors"
)

type searchBody struct {
	Username string   `json:"username"`
	Links    []string `json:"links"`
}

type problemBody struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func newSearchAPI(t *testing.T, service *mockSearchService) humatest.TestAPI {
	_, api := humatest.New(t)
	NewSearchHandler(service).RegisterRoutes(api)
	return api
}

func TestSearchHandler_RegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewSearchHandler(&mockSearchService{}).RegisterRoutes(api)

	path := api.OpenAPI().Paths["/search"]
	require.NotNil(t, path)
	require.NotNil(t, path.Post)
	assert.Equal(t, "searchProfiles", path.Post.OperationID)
}

func TestSearchHandler_Success(t *testing.T) {
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
			return &domain.SearchResult{
				Username: "johndoe",
				Links:    []string{"https://github.com/johndoe", "https://twitter.com/johndoe"},
			}, nil
		},
	}
	api := newSearchAPI(t, service)

	resp := api.Post("/search", map[string]any{"username": "  johndoe  "})

	require.Equal(t, http.StatusOK, resp.Code)
	var body searchBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "johndoe", body.Username)
	assert.Equal(t, []string{"https://github.com/johndoe", "https://twitter.com/johndoe"}, body.Links)

	// Trimming belongs to the service, the handler passes the raw value
	assert.Equal(t, "  johndoe  ", service.lastReq.Username)
}

func TestSearchHandler_PassesSites(t *testing.T) {
	service := &mockSearchService{}
	api := newSearchAPI(t, service)

	resp := api.Post("/search", map[string]any{"username": "alice", "sites": []string{"GitHub", "Reddit"}})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"GitHub", "Reddit"}, service.lastReq.Sites)
}

func TestSearchHandler_AcceptsNullSites(t *testing.T) {
	service := &mockSearchService{}
	api := newSearchAPI(t, service)

	resp := api.Post("/search", strings.NewReader(`{"username": "alice", "sites": null}`))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, service.lastReq.Sites)
}

func TestSearchHandler_IgnoresUnknownFields(t *testing.T) {
	service := &mockSearchService{}
	api := newSearchAPI(t, service)

	resp := api.Post("/search", map[string]any{"username": "alice", "extra": 1})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "alice", service.lastReq.Username)
}

func TestSearchHandler_EmptyLinksIsArray(t *testing.T) {
	service := &mockSearchService{
		searchFunc: func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
			return &domain.SearchResult{Username: "ghost"}, nil
		},
	}
	api := newSearchAPI(t, service)

	resp := api.Post("/search", map[string]any{"username": "ghost"})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"links":[]`)
}

func TestSearchHandler_MissingUsernameFailsSchema(t *testing.T) {
	service := &mockSearchService{}
	api := newSearchAPI(t, service)

	resp := api.Post("/search", map[string]any{"sites": []string{"GitHub"}})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, 0, service.calls)
}

func TestSearchHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "blank username",
			err:            &errors.ValidationError{Field: "username", Message: "Username must not be empty"},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Username must not be empty",
		},
		{
			name:           "tool not installed",
			err:            &errors.ToolUnavailableError{Program: "sherlock", Hint: "Sherlock is not installed. Install it with: pip install sherlock-project"},
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Sherlock is not installed. Install it with: pip install sherlock-project",
		},
		{
			name:           "tool timed out",
			err:            &errors.ToolTimeoutError{Program: "sherlock", Timeout: 90 * time.Second},
			expectedStatus: http.StatusGatewayTimeout,
			expectedDetail: "sherlock did not finish within 1m30s",
		},
		{
			name:           "unexpected failure",
			err:            errors.WrapError(assert.AnError, "failed to run discovery tool"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockSearchService{
				searchFunc: func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
					return nil, tt.err
				},
			}
			api := newSearchAPI(t, service)

			resp := api.Post("/search", map[string]any{"username": "   "})

			require.Equal(t, tt.expectedStatus, resp.Code)
			var body problemBody
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedDetail, body.Detail)
			assert.NotContains(t, resp.Body.String(), assert.AnError.Error())
		})
	}
}
