package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"profile-search-api/api/dto/responses"
)

// ToolStatus reports which discovery tool is configured and whether it can be found
type ToolStatus interface {
	Program() string
	ToolAvailable() bool
}

// HealthHandler serves GET /health
type HealthHandler struct {
	tool ToolStatus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(tool ToolStatus) *HealthHandler {
	return &HealthHandler{tool: tool}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Description: "Reports whether the discovery tool is installed. Always answers 200 so liveness probes do not restart the service over a missing tool.",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	available := h.tool.ToolAvailable()

	status := "ok"
	if !available {
		status = "degraded"
	}

	return &HealthOutput{Body: responses.HealthResponse{
		Status:        status,
		Tool:          h.tool.Program(),
		ToolAvailable: available,
	}}, nil
}
