package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

// Options selects where and how the logger writes.
type Options struct {
	// Level is DEBUG, INFO, WARN or ERROR (default: INFO)
	Level string
	// Format is json or text (default: text)
	Format string
	// Output is stdout, stderr, or a file path (default: stdout)
	Output string
}

// DefaultLogger creates a logger using slog.Default()
func DefaultLogger() *Logger {
	return &Logger{
		Logger: slog.Default(),
	}
}

// NewLogger creates a configured logger. The returned closer releases the
// log file when Output is a path, and is a no-op otherwise.
func NewLogger(opts Options) (*Logger, io.Closer) {
	level := ParseLogLevel(opts.Level)
	format := strings.ToLower(opts.Format)
	output := opts.Output

	// Default to stdout if not specified
	if output == "" {
		output = "stdout"
	}

	var writer io.Writer
	var closer io.Closer = nopCloser{}
	switch output {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stdout if file can't be opened
			writer = os.Stdout
		} else {
			writer = file
			closer = file
		}
	}

	return &Logger{
		Logger: slog.New(newHandler(writer, format, level)),
	}, closer
}

// NewWriterLogger creates a logger writing to w, mostly for tests.
func NewWriterLogger(w io.Writer, format string, level string) *Logger {
	return &Logger{
		Logger: slog.New(newHandler(w, strings.ToLower(format), ParseLogLevel(level))),
	}
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// SLog exposes the underlying slog.Logger for libraries that need it.
func (l *Logger) SLog() *slog.Logger {
	return l.Logger
}

// ParseLogLevel parses log level from string
func ParseLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefaultLogger sets the logger as the default slog logger
func SetDefaultLogger(l *Logger) {
	slog.SetDefault(l.Logger)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
