package obs

import (
	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a minimal logging interface for observability.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// ZerologLogger bridges Logger to a zerolog.Logger. Level filtering is
// left to the underlying logger.
type ZerologLogger struct {
	L zerolog.Logger
}

func (z ZerologLogger) Logf(level Level, format string, args ...interface{}) {
	var ev *zerolog.Event
	switch level {
	case Debug:
		ev = z.L.Debug()
	case Info:
		ev = z.L.Info()
	case Warn:
		ev = z.L.Warn()
	default:
		ev = z.L.Error()
	}
	ev.Msgf(format, args...)
}
