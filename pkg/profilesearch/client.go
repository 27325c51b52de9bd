// ABOUTME: Main client for the profile search library
// ABOUTME: Runs the discovery tool in-process without any HTTP dependencies

package profilesearch

import (
	"context"

	"profile-search-api/core/domain"
	"profile-search-api/core/interfaces"
	"profile-search-api/core/search"
)

// Client is the main entry point for the library
type Client struct {
	service *search.SearchService
	config  Config
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	deps := interfaces.Dependencies{
		Runner:  config.Runner,
		Logger:  config.Logger,
		Metrics: config.Metrics,
	}

	service := search.NewSearchService(deps, search.Options{
		Program:       config.ToolPath,
		Timeout:       config.Timeout,
		MaxConcurrent: config.MaxConcurrent,
		InstallHint:   config.InstallHint,
	})

	return &Client{service: service, config: config}, nil
}

// Search runs the discovery tool for username and returns the profile links it found
func (c *Client) Search(ctx context.Context, username string, sites ...string) (*Result, error) {
	result, err := c.service.Search(ctx, domain.SearchRequest{
		Username: username,
		Sites:    sites,
	})
	if err != nil {
		return nil, fromCoreError(err)
	}

	return toResult(result), nil
}

// Health reports whether the configured tool can be found on this host
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	available := c.service.ToolAvailable()
	status := "ok"
	if !available {
		status = "degraded"
	}
	return &HealthStatus{
		Status:        status,
		Tool:          c.service.Program(),
		ToolAvailable: available,
	}, nil
}

// Config returns a copy of the client configuration
func (c *Client) Config() Config {
	return c.config
}

func toResult(r *domain.SearchResult) *Result {
	links := make([]string, len(r.Links))
	copy(links, r.Links)
	return &Result{Username: r.Username, Links: links}
}
