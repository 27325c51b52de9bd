// ABOUTME: Request DTOs for the profile search endpoint
// ABOUTME: Describes the JSON body accepted by POST /search

package requests

// SearchRequest represents the request body for a profile search
type SearchRequest struct {
	// Unknown fields are ignored rather than rejected
	_ struct{} `json:"-" additionalProperties:"true"`

	// Username is required; blank values are rejected by the search service
	Username string `json:"username" doc:"Username to look for. Surrounding whitespace is ignored." example:"johndoe"`

	// Sites optionally restricts the search; null and [] both mean every site
	Sites []string `json:"sites,omitempty" nullable:"true" doc:"Optional list of site names to restrict the search to"`
}
