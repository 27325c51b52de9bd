package search

import (
	"context"
	"sync"
	"time"

	"profile-search-api/core/domain"
)

// mockRunner is a mock implementation of the ToolRunner interface
type mockRunner struct {
	mu        sync.Mutex
	runFunc   func(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error)
	available bool
	calls     []domain.Invocation
}

func (m *mockRunner) Run(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, inv)
	m.mu.Unlock()

	if m.runFunc != nil {
		return m.runFunc(ctx, inv)
	}
	return domain.ToolOutput{}, nil
}

func (m *mockRunner) Available(program string) bool {
	return m.available
}

func (m *mockRunner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// stdoutRunner returns a runner that always prints stdout and exits with code
func stdoutRunner(stdout string, code int) *mockRunner {
	return &mockRunner{
		runFunc: func(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error) {
			return domain.ToolOutput{Stdout: stdout, ExitCode: code, Duration: 10 * time.Millisecond}, nil
		},
	}
}

// mockMetrics records what the service reported
type mockMetrics struct {
	mu       sync.Mutex
	outcomes []string
	links    int
	inFlight int
	maxSeen  int
	runs     int
}

func (m *mockMetrics) SearchFinished(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *mockMetrics) ToolRunObserved(duration time.Duration, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs++
}

func (m *mockMetrics) LinksFound(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links += n
}

func (m *mockMetrics) InFlight(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight += delta
	if m.inFlight > m.maxSeen {
		m.maxSeen = m.inFlight
	}
}

// mockLogger collects log messages
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *mockLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) { l.record(msg) }
