// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Runner executes the external discovery tool
	Runner ToolRunner

	// Logger provides structured logging
	Logger Logger

	// Metrics records search outcomes; nil disables recording
	Metrics Metrics
}
