package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_DefaultConfig(t *testing.T) {
	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	if logger.config.Level != "info" {
		t.Errorf("expected default level = info, got %s", logger.config.Level)
	}

	if logger.config.Format != "console" {
		t.Errorf("expected default format = console, got %s", logger.config.Format)
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "console",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Test that we can log without errors
	logger.Debug("test debug message")
	logger.Info("test info message")
	logger.Warn("test warn message")
	logger.Error("test error message")
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "verbose",
		Format: "console",
	}

	if _, err := New(cfg); err == nil {
		t.Error("New() should fail for invalid log level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "test.log")

	cfg := &Config{
		Level:      "info",
		Format:     "json",
		OutputPath: logFile,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("message written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	if !strings.Contains(string(data), "message written to file") {
		t.Errorf("log file should contain the logged message, got: %s", string(data))
	}
}

func TestWithFields(t *testing.T) {
	logger, err := New(&Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	withFields := logger.WithFields("key", "value")
	if withFields == nil {
		t.Fatal("WithFields() returned nil")
	}

	withImage := logger.WithImage("/tmp/scan.png")
	if withImage == nil {
		t.Fatal("WithImage() returned nil")
	}

	withStage := logger.WithStage("preprocess")
	if withStage == nil {
		t.Fatal("WithStage() returned nil")
	}
}

func TestGet_CreatesDefault(t *testing.T) {
	defaultLogger = nil

	logger := Get()
	if logger == nil {
		t.Fatal("Get() returned nil")
	}

	// Subsequent calls should return the same instance
	if Get() != logger {
		t.Error("Get() should return the same global instance")
	}
}
