// Package logging provides structured logging for chartkit using bolt.
package logging

import (
	"os"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	defaultLogger *bolt.Logger
	once          sync.Once
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the output destination.
	Output *os.File
}

// DefaultConfig returns a configuration with sensible defaults. Logs go
// to stderr so CLI output (SVG documents, extracted segments) stays
// clean on stdout.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// parseLevel converts a string level to bolt.Level.
func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// Init initializes the default logger with the given configuration.
func Init(config Config) {
	once.Do(func() {
		output := config.Output
		if output == nil {
			output = os.Stderr
		}

		var handler bolt.Handler
		if config.Format == "json" {
			handler = bolt.NewJSONHandler(output)
		} else {
			handler = bolt.NewConsoleHandler(output)
		}

		defaultLogger = bolt.New(handler).SetLevel(parseLevel(config.Level))
	})
}

// Get returns the default logger, initializing if necessary.
func Get() *bolt.Logger {
	if defaultLogger == nil {
		Init(DefaultConfig())
	}
	return defaultLogger
}

// SetLevel changes the log level of the default logger.
func SetLevel(level string) {
	Get().SetLevel(parseLevel(level))
}
