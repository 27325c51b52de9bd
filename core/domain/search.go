// ABOUTME: Search domain models for profile discovery requests and results
// ABOUTME: Defines the request, result and external tool invocation structures

package domain

import "time"

// SearchRequest asks the discovery tool for accounts matching a username
type SearchRequest struct {
	// Username is the account name to look for. Surrounding whitespace is ignored.
	Username string

	// Sites optionally restricts the search to the named platforms.
	// Order is kept and duplicates are passed through.
	Sites []string
}

// SearchResult holds the profile URLs the discovery tool reported as found
type SearchResult struct {
	// Username is the trimmed username that was searched
	Username string

	// Links are the discovered profile URLs in output order
	Links []string
}

// Invocation is a single run of the external discovery tool
type Invocation struct {
	// Program is the executable name or path
	Program string

	// Args are passed to the program verbatim, without a shell
	Args []string
}

// ToolOutput is what a finished tool run produced
type ToolOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}
