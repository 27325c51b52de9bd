// ABOUTME: Profile search handler for the Huma API
// ABOUTME: Provides the POST /search endpoint backed by the discovery tool

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"profile-search-api/api/dto/mappers"
	"profile-search-api/api/dto/requests"
	"profile-search-api/api/dto/responses"
	"profile-search-api/core/domain"
)

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}

// SearchHandler handles profile search HTTP requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchProfiles",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Search for profiles by username",
		Description: "Runs the Sherlock discovery tool for a username and returns the profile URLs it reports as found",
		Tags:        []string{"Search"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusGatewayTimeout},
	}, h.Search)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the POST /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result, err := h.searchService.Search(ctx, mappers.ToSearchRequest(&input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: mappers.ToSearchResponse(result)}, nil
}
