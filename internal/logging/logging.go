package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/firefly-engineering/wsbgen/internal/terminal"
)

var (
	// Logger is the global structured logger
	Logger zerolog.Logger

	// Verbose enables debug logging
	Verbose bool
)

func init() {
	Logger = newLogger(os.Stderr, zerolog.InfoLevel, false)
}

// Setup configures the logger based on verbosity and output preferences
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if w == nil {
		w = os.Stderr
	}

	Logger = newLogger(w, level, jsonOutput)
}

func newLogger(w io.Writer, level zerolog.Level, jsonOutput bool) zerolog.Logger {
	if !jsonOutput {
		f, _ := w.(*os.File)
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    !terminal.IsTerminal(f),
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debug logs a debug message with alternating key/value pairs
func Debug(msg string, args ...any) {
	Logger.Debug().Fields(args).Msg(msg)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info().Fields(args).Msg(msg)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn().Fields(args).Msg(msg)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error().Fields(args).Msg(msg)
}

// With returns a logger with additional fields
func With(args ...any) zerolog.Logger {
	return Logger.With().Fields(args).Logger()
}
