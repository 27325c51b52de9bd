package interfaces

import (
	"context"

	"profile-search-api/core/domain"
)

// ToolRunner defines the interface for running the external discovery tool.
// Implementations spawn a process, a container, or return canned output in tests.
type ToolRunner interface {
	// Run executes the invocation and returns its captured output.
	// A non-zero exit code is reported in ToolOutput, not as an error.
	// Implementations return *errors.ToolUnavailableError when the program
	// cannot be started and *errors.ToolTimeoutError when ctx's deadline expires.
	Run(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error)

	// Available reports whether the program can be located on this host.
	Available(program string) bool
}
