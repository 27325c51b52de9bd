// ABOUTME: Public types exposed by the profile search library
// ABOUTME: Provides stable structures decoupled from the internal domain package

package profilesearch

import "context"

// Result holds the profile URLs found for a username
type Result struct {
	// Username is the trimmed username that was searched
	Username string `json:"username"`

	// Links are profile URLs in the order the discovery tool reported them.
	// Never nil.
	Links []string `json:"links"`
}

// HealthStatus describes whether a search backend can serve requests
type HealthStatus struct {
	Status        string `json:"status"`
	Tool          string `json:"tool"`
	ToolAvailable bool   `json:"tool_available"`
}

// Searcher is implemented by both the in-process Client and the RemoteClient
type Searcher interface {
	// Search looks for accounts named username, optionally limited to sites
	Search(ctx context.Context, username string, sites ...string) (*Result, error)

	// Health reports whether the discovery tool is usable
	Health(ctx context.Context) (*HealthStatus, error)
}

var (
	_ Searcher = (*Client)(nil)
	_ Searcher = (*RemoteClient)(nil)
)
