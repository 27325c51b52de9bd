package search

import "profile-search-api/core/domain"

const (
	// printFoundFlag makes the tool print positive matches only
	printFoundFlag = "--print-found"

	// siteFlag restricts the search to one platform; it may be repeated
	siteFlag = "--site"
)

// BuildInvocation turns a username and site filters into the tool command line:
//
//	<program> <username> --print-found [--site <site> ...]
//
// Sites are passed through in order, without deduplication or validation.
// The username must already be trimmed.
func BuildInvocation(program, username string, sites []string) domain.Invocation {
	args := make([]string, 0, 2+2*len(sites))
	args = append(args, username, printFoundFlag)
	for _, site := range sites {
		args = append(args, siteFlag, site)
	}

	return domain.Invocation{
		Program: program,
		Args:    args,
	}
}
