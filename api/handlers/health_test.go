package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		available      bool
		expectedStatus string
	}{
		{"tool installed", true, "ok"},
		{"tool missing", false, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := &mockToolStatus{}
			tool.On("Program").Return("sherlock")
			tool.On("ToolAvailable").Return(tt.available).Once()

			_, api := humatest.New(t)
			NewHealthHandler(tool).RegisterRoutes(api)

			resp := api.Get("/health")

			require.Equal(t, http.StatusOK, resp.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body["status"])
			assert.Equal(t, "sherlock", body["tool"])
			assert.Equal(t, tt.available, body["tool_available"])
			tool.AssertExpectations(t)
		})
	}
}
