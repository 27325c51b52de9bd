// ABOUTME: Configuration options for the profile search library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package profilesearch

import (
	"time"

	"profile-search-api/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// ToolPath is the discovery tool executable
	ToolPath string

	// Timeout bounds each search; zero disables it
	Timeout time.Duration

	// MaxConcurrent caps simultaneous tool processes per client
	MaxConcurrent int

	// InstallHint is returned when the tool is missing
	InstallHint string

	// Runner executes the tool. Defaults to an os/exec runner.
	Runner interfaces.ToolRunner

	Logger  interfaces.Logger
	Metrics interfaces.Metrics
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithToolPath sets the discovery tool executable name or path
func WithToolPath(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewError(ErrorTypeConfiguration, "tool path cannot be empty")
		}
		c.ToolPath = path
		return nil
	}
}

// WithTimeout sets the per-search timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return NewError(ErrorTypeConfiguration, "timeout cannot be negative")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithMaxConcurrent sets how many tool processes may run at once
func WithMaxConcurrent(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "max concurrent must be at least 1")
		}
		c.MaxConcurrent = n
		return nil
	}
}

// WithInstallHint overrides the guidance returned when the tool is missing
func WithInstallHint(hint string) Option {
	return func(c *Config) error {
		c.InstallHint = hint
		return nil
	}
}

// WithRunner sets a custom tool runner
func WithRunner(runner interfaces.ToolRunner) Option {
	return func(c *Config) error {
		if runner == nil {
			return NewError(ErrorTypeConfiguration, "runner cannot be nil")
		}
		c.Runner = runner
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics recorder
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithQuietMode suppresses all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
