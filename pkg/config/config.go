// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, discovery tool, logging and metrics

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Tool contains discovery tool configuration
	Tool ToolConfig

	// Logging contains logger configuration
	Logging LoggingConfig

	// Metrics contains metrics endpoint configuration
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration

	// AllowedOrigins lists CORS origins
	AllowedOrigins []string
}

// ToolConfig holds discovery tool configuration
type ToolConfig struct {
	// Path is the executable name or absolute path
	Path string

	// Timeout bounds one search; the child process is killed when it expires
	Timeout time.Duration

	// MaxConcurrent caps simultaneous tool processes
	MaxConcurrent int

	// InstallHint is shown to callers when the tool is missing.
	// Empty selects the search service's built-in Sherlock guidance.
	InstallHint string
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File, when set, receives log output with size-based rotation
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// MetricsConfig holds prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Configuration keys. With AutomaticEnv each key is also read from the
// upper-cased environment variable of the same name (PORT, SHERLOCK_PATH, ...).
const (
	KeyPort               = "port"
	KeyReadTimeout        = "read_timeout"
	KeyWriteTimeout       = "write_timeout"
	KeyIdleTimeout        = "idle_timeout"
	KeyShutdownTimeout    = "shutdown_timeout"
	KeyCORSAllowedOrigins = "cors_allowed_origins"
	KeyToolPath           = "sherlock_path"
	KeyToolTimeout        = "tool_timeout"
	KeyToolMaxConcurrent  = "tool_max_concurrent"
	KeyToolInstallHint    = "tool_install_hint"
	KeyLogLevel           = "log_level"
	KeyLogFormat          = "log_format"
	KeyLogFile            = "log_file"
	KeyLogMaxSizeMB       = "log_max_size_mb"
	KeyLogMaxBackups      = "log_max_backups"
	KeyLogMaxAgeDays      = "log_max_age_days"
	KeyLogCompress        = "log_compress"
	KeyMetricsEnabled     = "metrics_enabled"
	KeyMetricsPath        = "metrics_path"
)

// SetDefaults registers default values for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8000")
	v.SetDefault(KeyReadTimeout, "15s")
	v.SetDefault(KeyWriteTimeout, "150s")
	v.SetDefault(KeyIdleTimeout, "60s")
	v.SetDefault(KeyShutdownTimeout, "30s")
	v.SetDefault(KeyCORSAllowedOrigins, []string{"*"})

	v.SetDefault(KeyToolPath, "sherlock")
	v.SetDefault(KeyToolTimeout, "120s")
	v.SetDefault(KeyToolMaxConcurrent, 4)
	v.SetDefault(KeyToolInstallHint, "")

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSizeMB, 100)
	v.SetDefault(KeyLogMaxBackups, 3)
	v.SetDefault(KeyLogMaxAgeDays, 28)
	v.SetDefault(KeyLogCompress, true)

	v.SetDefault(KeyMetricsEnabled, true)
	v.SetDefault(KeyMetricsPath, "/metrics")
}

// NewViper returns a viper instance with defaults, the optional
// profile-search.yaml config file and environment lookup configured
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName("profile-search")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/profile-search")

	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and builds a Config from v
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString(KeyPort),
			ReadTimeout:     v.GetDuration(KeyReadTimeout),
			WriteTimeout:    v.GetDuration(KeyWriteTimeout),
			IdleTimeout:     v.GetDuration(KeyIdleTimeout),
			ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
			AllowedOrigins:  splitList(v.GetStringSlice(KeyCORSAllowedOrigins)),
		},
		Tool: ToolConfig{
			Path:          v.GetString(KeyToolPath),
			Timeout:       v.GetDuration(KeyToolTimeout),
			MaxConcurrent: v.GetInt(KeyToolMaxConcurrent),
			InstallHint:   v.GetString(KeyToolInstallHint),
		},
		Logging: LoggingConfig{
			Level:      strings.ToLower(v.GetString(KeyLogLevel)),
			Format:     strings.ToLower(v.GetString(KeyLogFormat)),
			File:       v.GetString(KeyLogFile),
			MaxSizeMB:  v.GetInt(KeyLogMaxSizeMB),
			MaxBackups: v.GetInt(KeyLogMaxBackups),
			MaxAgeDays: v.GetInt(KeyLogMaxAgeDays),
			Compress:   v.GetBool(KeyLogCompress),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool(KeyMetricsEnabled),
			Path:    v.GetString(KeyMetricsPath),
		},
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from .env, the config file and environment variables
func LoadFromEnv() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return Load(NewViper())
}

// splitList accepts both repeated values and comma separated strings
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Tool.Path == "" {
		return errors.New("sherlock path cannot be empty")
	}

	if c.Tool.Timeout <= 0 {
		return errors.New("tool timeout must be positive")
	}

	if c.Tool.MaxConcurrent < 1 {
		return errors.New("tool max concurrent must be at least 1")
	}

	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Tool.Timeout {
		return errors.New("write timeout must be longer than the tool timeout")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics path must start with '/'")
	}

	return nil
}
