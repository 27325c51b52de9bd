// ABOUTME: Search service discovers social media profiles through an external tool
// ABOUTME: Validates input, runs the discovery tool and parses its output into links

package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"profile-search-api/core/domain"
	apperrors "profile-search-api/core/errors"
	"profile-search-api/core/interfaces"
	"profile-search-api/pkg/requestid"
)

// DefaultInstallHint tells operators how to make Sherlock available
const DefaultInstallHint = "Sherlock CLI is not installed on the server. Install it via " +
	"`pip install sherlock-project` or run this API on a host where Sherlock is available."

// Options configures how the discovery tool is run
type Options struct {
	// Program is the tool executable, looked up in PATH when not absolute
	Program string

	// Timeout bounds a single search including the wait for a free slot.
	// Zero means no timeout.
	Timeout time.Duration

	// MaxConcurrent caps simultaneous tool processes. Values below 1 mean 1.
	MaxConcurrent int

	// InstallHint is returned to callers when the tool cannot be started
	InstallHint string
}

// SearchService handles profile discovery operations
type SearchService struct {
	deps interfaces.Dependencies
	opts Options
	sem  *semaphore.Weighted
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts Options) *SearchService {
	if opts.Program == "" {
		opts.Program = "sherlock"
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}
	if opts.InstallHint == "" {
		opts.InstallHint = DefaultInstallHint
	}

	return &SearchService{
		deps: deps,
		opts: opts,
		sem:  semaphore.NewWeighted(int64(opts.MaxConcurrent)),
	}
}

// Program returns the configured tool executable
func (s *SearchService) Program() string {
	return s.opts.Program
}

// ToolAvailable reports whether the discovery tool can be located
func (s *SearchService) ToolAvailable() bool {
	if s.deps.Runner == nil {
		return false
	}
	return s.deps.Runner.Available(s.opts.Program)
}

// validateUsername trims the username and rejects empty input
func (s *SearchService) validateUsername(username string) (string, error) {
	trimmed := strings.TrimFunc(username, isSpace)
	if trimmed == "" {
		return "", &apperrors.ValidationError{
			Field:   "username",
			Message: "Username must not be empty",
		}
	}
	return trimmed, nil
}

// Search runs the discovery tool for req and returns the profile links it found
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	username, err := s.validateUsername(req.Username)
	if err != nil {
		s.finished(interfaces.OutcomeInvalidInput)
		return nil, err
	}

	if s.deps.Runner == nil {
		s.finished(interfaces.OutcomeError)
		return nil, errors.New("tool runner not configured")
	}

	inv := BuildInvocation(s.opts.Program, username, req.Sites)
	s.log().Debug("Built discovery tool invocation", map[string]interface{}{
		"request_id": requestid.From(ctx),
		"program":    inv.Program,
		"args":       inv.Args,
	})

	runCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	output, err := s.run(runCtx, inv)
	if err != nil {
		return nil, s.classify(ctx, runCtx, username, err)
	}

	if output.ExitCode != 0 {
		s.log().Warn("Discovery tool exited with non-zero status", map[string]interface{}{
			"request_id": requestid.From(ctx),
			"username":   username,
			"exit_code":  output.ExitCode,
			"stderr":     tail(output.Stderr, 512),
		})
	}

	links := ParseLinks(output.Stdout)

	s.log().Info("Search completed", map[string]interface{}{
		"request_id":  requestid.From(ctx),
		"username":    username,
		"sites":       len(req.Sites),
		"links":       len(links),
		"exit_code":   output.ExitCode,
		"duration_ms": output.Duration.Milliseconds(),
	})
	s.finished(interfaces.OutcomeOK)
	if s.deps.Metrics != nil {
		s.deps.Metrics.LinksFound(len(links))
	}

	return &domain.SearchResult{
		Username: username,
		Links:    links,
	}, nil
}

// run waits for a free slot and executes the invocation
func (s *SearchService) run(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return domain.ToolOutput{}, err
	}
	defer s.sem.Release(1)

	if s.deps.Metrics != nil {
		s.deps.Metrics.InFlight(1)
		defer s.deps.Metrics.InFlight(-1)
	}

	output, err := s.deps.Runner.Run(ctx, inv)
	if err == nil && s.deps.Metrics != nil {
		s.deps.Metrics.ToolRunObserved(output.Duration, output.ExitCode)
	}
	return output, err
}

// classify maps a failed run onto the error taxonomy and records it
func (s *SearchService) classify(ctx, runCtx context.Context, username string, err error) error {
	fields := map[string]interface{}{
		"request_id": requestid.From(ctx),
		"username":   username,
		"program":    s.opts.Program,
		"error":      err.Error(),
	}

	var unavailable *apperrors.ToolUnavailableError
	switch {
	case errors.As(err, &unavailable):
		out := *unavailable
		if out.Hint == "" {
			out.Hint = s.opts.InstallHint
		}
		s.log().Error("Discovery tool unavailable", fields)
		s.finished(interfaces.OutcomeToolUnavailable)
		return &out

	case apperrors.IsToolTimeout(err) || (errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil):
		s.log().Error("Discovery tool timed out", fields)
		s.finished(interfaces.OutcomeToolTimeout)
		return &apperrors.ToolTimeoutError{Program: s.opts.Program, Timeout: s.opts.Timeout}

	case ctx.Err() != nil:
		s.log().Warn("Search canceled", fields)
		s.finished(interfaces.OutcomeCanceled)
		return apperrors.WrapError(ctx.Err(), "search canceled")
	}

	s.log().Error("Discovery tool failed", fields)
	s.finished(interfaces.OutcomeError)
	return apperrors.WrapError(err, "failed to run discovery tool")
}

func (s *SearchService) finished(outcome string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.SearchFinished(outcome)
	}
}

func (s *SearchService) log() interfaces.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return nopLogger{}
}

// tail returns at most the last n bytes of s
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
