package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Opts configures the logger
type Opts struct {
	Level  string
	Output io.Writer
	JSON   bool
}

// New returns a slog logger writing through zerolog
func New(opts Opts) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(out).With().Timestamp().Logger()

	handler := slogzerolog.Option{
		Level:  ParseLevel(opts.Level),
		Logger: &zl,
	}.NewZerologHandler()

	return slog.New(handler)
}

// Nop returns a logger that discards everything
func Nop() *slog.Logger {
	return New(Opts{Output: io.Discard, JSON: true, Level: "error"})
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
