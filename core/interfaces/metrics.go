package interfaces

import "time"

// Search outcomes reported to Metrics
const (
	OutcomeOK              = "ok"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeToolUnavailable = "tool_unavailable"
	OutcomeToolTimeout     = "tool_timeout"
	OutcomeCanceled        = "canceled"
	OutcomeError           = "error"
)

// Metrics records search activity
type Metrics interface {
	// SearchFinished counts one search with the given outcome
	SearchFinished(outcome string)

	// ToolRunObserved records how long one tool run took and its exit code
	ToolRunObserved(duration time.Duration, exitCode int)

	// LinksFound adds n discovered links
	LinksFound(n int)

	// InFlight adjusts the number of running tool processes by delta
	InFlight(delta int)
}
