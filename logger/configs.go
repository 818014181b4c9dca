package logger

import "os"

// Level represents the minimum severity a log entry needs to be emitted.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config controls the behavior of the logger.
type Config struct {
	// Level is the minimum log level. Entries below it are dropped.
	Level Level

	// ServiceName is attached to every entry as an initial field.
	ServiceName string
}

// NewConfig builds the logger configuration from the environment.
//
// LOG_LEVEL accepts debug, info, warning or error and defaults to info.
func NewConfig() Config {
	level := Level(os.Getenv("LOG_LEVEL"))
	switch level {
	case Debug, Info, Warning, Error:
	default:
		level = Info
	}

	return Config{
		Level:       level,
		ServiceName: "colbertgate",
	}
}
