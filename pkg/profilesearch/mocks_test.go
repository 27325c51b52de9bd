package profilesearch

import (
	"context"
	"sync"

	"profile-search-api/core/domain"
)

// fakeRunner is a ToolRunner that returns canned output
type fakeRunner struct {
	mu        sync.Mutex
	stdout    string
	err       error
	available bool
	calls     []domain.Invocation
}

func (f *fakeRunner) Run(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error) {
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	f.mu.Unlock()

	if f.err != nil {
		return domain.ToolOutput{ExitCode: -1}, f.err
	}
	return domain.ToolOutput{Stdout: f.stdout}, nil
}

func (f *fakeRunner) Available(program string) bool {
	return f.available
}
