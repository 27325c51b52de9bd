// ABOUTME: Response DTOs for the profile search and health endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// SearchResponse is returned by POST /search
type SearchResponse struct {
	Username string   `json:"username" doc:"The trimmed username that was searched"`
	Links    []string `json:"links" doc:"Profile URLs reported as found, in tool output order"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status        string `json:"status" enum:"ok,degraded" doc:"ok when the discovery tool is available"`
	Tool          string `json:"tool" doc:"Configured discovery tool executable"`
	ToolAvailable bool   `json:"tool_available" doc:"Whether the tool was found on this host"`
}
