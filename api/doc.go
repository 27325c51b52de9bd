// Package api provides the HTTP API layer for the profile search service.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation and a typed handler interface.
//
// # Layout
//
//   - server.go: Huma API configuration, CORS and the metrics route
//   - handlers/: HTTP request handlers and domain error mapping
//   - dto/: request and response bodies plus mappers from domain types
//   - middleware/: request logging with request IDs
//
// # Usage
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:         logger,
//	    AllowedOrigins: cfg.Server.AllowedOrigins,
//	    MetricsHandler: recorder.Handler(),
//	    MetricsPath:    "/metrics",
//	})
//
//	handlers.NewSearchHandler(searchService).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(searchService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Errors
//
// Errors use the RFC 7807 problem format produced by Huma:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "Username must not be empty"
//	}
//
// Domain errors are mapped to status codes in handlers/errors.go. Process
// output and internal error text never reach the response body.
package api
