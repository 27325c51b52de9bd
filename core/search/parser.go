package search

import (
	"regexp"
	"strings"
	"unicode"
)

// linkPattern matches a scheme-qualified URL up to the next whitespace.
// Whitespace here follows Unicode, not just ASCII.
var linkPattern = regexp.MustCompile(`https?://[^\s\x0b\x1c-\x1f\x85\p{Z}]+`)

// ParseLinks extracts profile URLs from the tool's stdout.
// Each line contributes at most its first URL; lines without one are skipped.
// The platform label in front of the URL is not kept.
func ParseLinks(stdout string) []string {
	links := make([]string, 0)
	for _, line := range strings.FieldsFunc(stdout, isLineBreak) {
		if link := linkPattern.FindString(line); link != "" {
			links = append(links, link)
		}
	}
	return links
}

// isSpace is the whitespace set trimmed from usernames. It covers the same
// characters that end a link in linkPattern, including U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
