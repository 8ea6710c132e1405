package logging

import (
	"testing"
)

func TestRunIDStable(t *testing.T) {
	first := RunID()
	if first == "" {
		t.Fatal("RunID() returned empty string")
	}
	if second := RunID(); second != first {
		t.Errorf("RunID() changed between calls: %q != %q", first, second)
	}
}

func TestNewConsoleOnly(t *testing.T) {
	logger := New(Options{ConsoleOnly: true})
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	if path := LogFilePath(logger); path != "" {
		t.Errorf("console-only logger reported file path %q", path)
	}

	// Must not panic on the fluent API.
	logger.Info().Str("selector", "#username").Msg("smoke")
	logger.Error().Msg("smoke error")
}

func TestNewWithFileWriter(t *testing.T) {
	dir := t.TempDir()
	logger := New(Options{Dir: dir, Level: "info"})
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	logger.Info().Msg("file writer smoke")
}

func TestLogFilePathNilLogger(t *testing.T) {
	if got := LogFilePath(nil); got != "" {
		t.Errorf("LogFilePath(nil) = %q, want empty", got)
	}
}
