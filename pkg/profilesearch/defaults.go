// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default runner, logger and HTTP client

package profilesearch

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"profile-search-api/core/interfaces"
	"profile-search-api/core/search"
	httpInfra "profile-search-api/infrastructure/http/standard"
	"profile-search-api/infrastructure/logger/structured"
	"profile-search-api/infrastructure/process"
)

const (
	// DefaultToolPath is looked up in PATH
	DefaultToolPath = "sherlock"

	// DefaultTimeout matches the server default
	DefaultTimeout = 120 * time.Second

	DefaultMaxConcurrent = 4
)

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		ToolPath:      DefaultToolPath,
		Timeout:       DefaultTimeout,
		MaxConcurrent: DefaultMaxConcurrent,
		InstallHint:   search.DefaultInstallHint,
		Runner:        process.NewExecRunner(),
		Logger:        QuietLogger(),
	}
}

// DefaultHTTPClient creates an HTTP client whose timeout leaves room for a full search
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultTimeout + 30*time.Second)
}

// DefaultLogger creates a JSON logger that writes to stderr
func DefaultLogger() interfaces.Logger {
	return structured.NewLoggerWithWriter(os.Stderr, logrus.InfoLevel)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}
