// Package logging provides zerolog-backed logging for drupalctl.
// Entries go to a log file under the XDG state directory and to a console
// writer on stderr, each with its own level.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Options configures a Logger.
// Fields are ordered to minimize memory padding.
type Options struct {
	Console      io.Writer // nil disables console output
	FilePath     string    // empty disables the log file
	FileLevel    zerolog.Level
	ConsoleLevel zerolog.Level
	NoColor      bool
}

// Logger writes categorized entries through zerolog.
type Logger struct {
	file    *os.File
	console *zerolog.FilteredLevelWriter
	zl      zerolog.Logger
}

// New creates a Logger. A log file that cannot be opened is reported on the
// console and skipped.
func New(opts Options) *Logger {
	var writers []io.Writer
	var console *zerolog.FilteredLevelWriter
	if opts.Console != nil {
		console = &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        opts.Console,
				TimeFormat: time.Kitchen,
				NoColor:    opts.NoColor,
			}},
			Level: opts.ConsoleLevel,
		}
		writers = append(writers, console)
	}

	var file *os.File
	var fileErr error
	if opts.FilePath != "" {
		file, fileErr = openLogFile(opts.FilePath)
		if fileErr == nil {
			writers = append(writers, &zerolog.FilteredLevelWriter{
				Writer: zerolog.LevelWriterAdapter{Writer: file},
				Level:  opts.FileLevel,
			})
		}
	}

	if len(writers) == 0 {
		return Nop()
	}

	l := &Logger{
		file:    file,
		console: console,
		zl:      zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(zerolog.TraceLevel).With().Timestamp().Logger(),
	}
	if fileErr != nil {
		l.zl.Warn().Err(fileErr).Str("path", opts.FilePath).Msg("Failed to open log file, logging to console only")
	}
	return l
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ParseLevel parses a [log] level value, defaulting to info.
func ParseLevel(levelStr string) zerolog.Level {
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// VerbosityLevel maps the -v count to the console level.
func VerbosityLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// SetConsoleLevel changes the minimum level written to the console.
func (l *Logger) SetConsoleLevel(level zerolog.Level) {
	if l.console != nil {
		l.console.Level = level
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) {
	l.zl.Debug().Str("category", category).Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(category, msg string) {
	l.zl.Info().Str("category", category).Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) {
	l.zl.Warn().Str("category", category).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string) {
	l.zl.Error().Str("category", category).Msg(msg)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
