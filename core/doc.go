// Package core contains the business logic for the profile search service.
// It does not depend on any web framework and can be used on its own.
//
// The core package is organized into several sub-packages:
//
//   - domain: search request, result and tool invocation models
//   - search: command construction, output parsing and the search service
//   - errors: typed errors mapped to HTTP status codes at the API boundary
//   - interfaces: contracts for external dependencies (tool runner, logger, metrics, HTTP)
//
// # Usage Example
//
//	import (
//	    "profile-search-api/core/interfaces"
//	    "profile-search-api/core/search"
//	    "profile-search-api/infrastructure/process"
//	)
//
//	deps := interfaces.Dependencies{
//	    Runner: process.NewExecRunner(),
//	    Logger: logger,
//	}
//
//	service := search.NewSearchService(deps, search.Options{
//	    Program:       "sherlock",
//	    Timeout:       2 * time.Minute,
//	    MaxConcurrent: 4,
//	})
//
//	result, err := service.Search(ctx, domain.SearchRequest{Username: "johndoe"})
package core
