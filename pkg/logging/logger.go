// Package logging provides the shared diagnostic logger for the harness.
// All components log through one arbor logger writing to a rotating file
// (logs/framework.log) and the console. The logger is constructed once and
// injected into every component at construction time.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

const (
	// DefaultLogDir is where framework.log is written when no directory is configured.
	DefaultLogDir = "logs"

	// LogFileName is the append-only diagnostic log consumed by humans and CI.
	LogFileName = "framework.log"

	// maxLogSize caps the log file before arbor rotates it.
	maxLogSize = 50 * 1024 * 1024

	// maxLogBackups is how many rotated files are kept.
	maxLogBackups = 3
)

// Options configures the diagnostic logger.
type Options struct {
	// Dir is the directory for the log file. Defaults to DefaultLogDir.
	Dir string

	// Level is the minimum severity written ("debug", "info", "warn", "error").
	// Defaults to "debug" so the file captures everything.
	Level string

	// ConsoleOnly disables the file writer. Used by tests that must not
	// leave artifacts behind.
	ConsoleOnly bool
}

var (
	// runID tags every log line and artifact produced by this process.
	runID     string
	runIDOnce sync.Once

	defaultLogger arbor.ILogger
	defaultOnce   sync.Once
)

// RunID returns the unique identifier for this harness execution.
func RunID() string {
	runIDOnce.Do(func() {
		runID = uuid.New().String()
	})
	return runID
}

// New builds a logger from the given options. If the log directory cannot be
// created the file writer is skipped and the logger falls back to console
// output only, with a warning on stderr. Logging must never be the reason a
// test run cannot start.
func New(opts Options) arbor.ILogger {
	if opts.Dir == "" {
		opts.Dir = DefaultLogDir
	}
	if opts.Level == "" {
		opts.Level = "debug"
	}

	logger := arbor.NewLogger().WithConsoleWriter(models.WriterConfiguration{
		Type:       models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
		OutputType: models.OutputFormatLogfmt,
	})

	if !opts.ConsoleOnly {
		if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
			fmt.Fprintf(os.Stderr, "pilot: file logging disabled: %v\n", err)
		} else {
			logger = logger.WithFileWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeFile,
				FileName:   filepath.Join(opts.Dir, LogFileName),
				TimeFormat: "2006-01-02 15:04:05",
				MaxSize:    maxLogSize,
				MaxBackups: maxLogBackups,
				OutputType: models.OutputFormatLogfmt,
			})
		}
	}

	return logger.WithLevelFromString(opts.Level)
}

// Default returns a process-wide logger built with default options. Intended
// for the CLI entrypoint; library consumers should call New and inject the
// result themselves.
func Default() arbor.ILogger {
	defaultOnce.Do(func() {
		defaultLogger = New(Options{})
	})
	return defaultLogger
}

// LogFilePath reports where the logger is writing its file, or "" when file
// output is disabled.
func LogFilePath(logger arbor.ILogger) string {
	if logger == nil {
		return ""
	}
	return logger.GetLogFilePath()
}
