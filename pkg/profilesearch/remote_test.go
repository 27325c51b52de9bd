package profilesearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-search-api/api"
	"profile-search-api/api/handlers"
	apperrors "profile-search-api/core/errors"
	"profile-search-api/core/interfaces"
	"profile-search-api/core/search"
	httpInfra "profile-search-api/infrastructure/http/standard"
)

// newTestServer serves the real API over a fake runner
func newTestServer(t *testing.T, runner *fakeRunner) *httptest.Server {
	t.Helper()

	service := search.NewSearchService(interfaces.Dependencies{Runner: runner}, search.Options{
		Program:       "sherlock",
		Timeout:       5 * time.Second,
		MaxConcurrent: 2,
	})

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{})
	handlers.NewSearchHandler(service).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(service).RegisterRoutes(humaAPI)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func newRemote(t *testing.T, url string) *RemoteClient {
	t.Helper()
	client, err := NewRemoteClient(url+"/", httpInfra.NewStandardHTTPClient(5*time.Second))
	require.NoError(t, err)
	return client
}

func TestNewRemoteClient_EmptyURL(t *testing.T) {
	_, err := NewRemoteClient("  ", nil)

	assert.Error(t, err)
}

func TestRemoteClient_Search(t *testing.T) {
	runner := &fakeRunner{stdout: "[+] GitHub: https://github.com/alice\n"}
	server := newTestServer(t, runner)

	result, err := newRemote(t, server.URL).Search(context.Background(), " alice ", "GitHub")
	require.NoError(t, err)

	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, []string{"https://github.com/alice"}, result.Links)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"alice", "--print-found", "--site", "GitHub"}, runner.calls[0].Args)
}

func TestRemoteClient_Search_Errors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		runErr   error
		check    func(error) bool
		message  string
	}{
		{
			name:     "blank username",
			username: " ",
			check:    IsValidationError,
			message:  "Username must not be empty",
		},
		{
			name:     "tool missing",
			username: "alice",
			runErr:   &apperrors.ToolUnavailableError{Program: "sherlock"},
			check:    IsToolUnavailableError,
			message:  search.DefaultInstallHint,
		},
		{
			name:     "tool timed out",
			username: "alice",
			runErr:   &apperrors.ToolTimeoutError{Program: "sherlock", Timeout: time.Second},
			check:    IsTimeoutError,
			message:  "sherlock did not finish within 5s",
		},
		{
			name:     "server failure",
			username: "alice",
			runErr:   assert.AnError,
			check:    IsInternalError,
			message:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, &fakeRunner{err: tt.runErr})

			_, err := newRemote(t, server.URL).Search(context.Background(), tt.username)

			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			var libErr *Error
			require.ErrorAs(t, err, &libErr)
			assert.Equal(t, tt.message, libErr.Message)
		})
	}
}

func TestRemoteClient_Search_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newRemote(t, url).Search(context.Background(), "alice")

	assert.True(t, IsNetworkError(err), "unexpected error: %v", err)
}

func TestRemoteClient_Health(t *testing.T) {
	server := newTestServer(t, &fakeRunner{available: true})

	health, err := newRemote(t, server.URL).Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "sherlock", health.Tool)
	assert.True(t, health.ToolAvailable)
}

func TestErrorFromResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   ErrorType
	}{
		{"unprocessable", http.StatusUnprocessableEntity, `{"title":"Unprocessable Entity"}`, ErrorTypeValidation},
		{"bad gateway", http.StatusBadGateway, ``, ErrorTypeInternal},
		{"plain 500", http.StatusInternalServerError, `{"detail":"Internal server error"}`, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errorFromResponse(tt.status, []byte(tt.body))

			var libErr *Error
			require.ErrorAs(t, err, &libErr)
			assert.Equal(t, tt.want, libErr.Type)
			assert.NotEmpty(t, libErr.Message)
		})
	}
}
