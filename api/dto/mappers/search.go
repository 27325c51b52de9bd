// ABOUTME: Mappers for converting between search domain models and API DTOs
// ABOUTME: Keeps the HTTP body shape independent from the core types

package mappers

import (
	"profile-search-api/api/dto/requests"
	"profile-search-api/api/dto/responses"
	"profile-search-api/core/domain"
)

// ToSearchRequest converts a request body to a domain SearchRequest
func ToSearchRequest(req *requests.SearchRequest) domain.SearchRequest {
	if req == nil {
		return domain.SearchRequest{}
	}
	return domain.SearchRequest{
		Username: req.Username,
		Sites:    req.Sites,
	}
}

// ToSearchResponse converts a domain SearchResult to a SearchResponse DTO.
// Links is always a non-nil slice so it encodes as [] rather than null.
func ToSearchResponse(result *domain.SearchResult) responses.SearchResponse {
	if result == nil {
		return responses.SearchResponse{Links: []string{}}
	}

	links := make([]string, len(result.Links))
	copy(links, result.Links)

	return responses.SearchResponse{
		Username: result.Username,
		Links:    links,
	}
}
