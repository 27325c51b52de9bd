// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging and the metrics route

package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"profile-search-api/api/middleware"
	"profile-search-api/core/interfaces"
	"profile-search-api/pkg/requestid"
)

const (
	apiTitle   = "Profile Search API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// AllowedOrigins defaults to every origin when empty
	AllowedOrigins []string

	// SlowRequestThreshold marks requests logged as slow; zero disables the warning
	SlowRequestThreshold time.Duration

	// MetricsHandler is mounted at MetricsPath when both are set
	MetricsHandler http.Handler
	MetricsPath    string
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Configure CORS (should be first middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestid.Header},
		ExposedHeaders:   []string{requestid.Header},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger, cfg.SlowRequestThreshold))
	}

	if cfg.MetricsHandler != nil && cfg.MetricsPath != "" {
		router.Method(http.MethodGet, cfg.MetricsPath, cfg.MetricsHandler)
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Finds public profile links for a username by running the Sherlock discovery tool"

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
