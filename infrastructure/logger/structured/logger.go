// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Provides leveled JSON or text logging with optional rotating file output

package structured

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"profile-search-api/pkg/config"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// NewLogger creates a logger from the logging configuration
func NewLogger(cfg config.LoggingConfig) (*Logger, error) {
	base := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	base.SetLevel(level)

	if cfg.Format == "text" {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	l := &Logger{entry: base}
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		}
		base.SetOutput(io.MultiWriter(os.Stdout, rotator))
		l.closer = rotator
	} else {
		base.SetOutput(os.Stdout)
	}

	return l, nil
}

// NewLoggerWithWriter creates a logger writing JSON to w, mostly for tests and the CLI
func NewLoggerWithWriter(w io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{entry: base}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
