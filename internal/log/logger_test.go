package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	logContent := string(content)

	if !strings.Contains(logContent, "[DEBUG] debug message") {
		t.Error("Debug message not found in log")
	}
	if !strings.Contains(logContent, "[INFO] info message") {
		t.Error("Info message not found in log")
	}
	if !strings.Contains(logContent, "[WARN] warning message") {
		t.Error("Warning message not found in log")
	}
	if !strings.Contains(logContent, "[ERROR] error message") {
		t.Error("Error message not found in log")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelWarn)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	logContent := string(content)

	if strings.Contains(logContent, "DEBUG") {
		t.Error("Debug message should have been filtered")
	}
	if strings.Contains(logContent, "INFO") {
		t.Error("Info message should have been filtered")
	}
	if !strings.Contains(logContent, "[WARN] warning message") {
		t.Error("Warning message should be present")
	}
	if !strings.Contains(logContent, "[ERROR] error message") {
		t.Error("Error message should be present")
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Log file permissions = %o, want %o", perm, 0600)
	}
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger1, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger1.Info("first message")
	_ = logger1.Close()

	logger2, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger2.Info("second message")
	_ = logger2.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "first message") {
		t.Error("First message not found")
	}
	if !strings.Contains(string(content), "second message") {
		t.Error("Second message not found")
	}
}

func TestLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("New() failed for nested path: %v", err)
	}
	_ = logger.Close()

	info, err := os.Stat(filepath.Dir(logPath))
	if err != nil {
		t.Fatalf("Failed to stat log directory: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("Log directory permissions = %o, want %o", perm, 0700)
	}
}

func TestLogger_MkdirAllError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(filePath, nil, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	_, err := New(filepath.Join(filePath, "subdir", "test.log"), LevelInfo)
	if err == nil {
		t.Error("New() should fail when path contains a file as directory")
	}
	if !strings.Contains(err.Error(), "create log directory") {
		t.Errorf("Error should mention directory creation, got: %v", err)
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger should return nil, got %v", err)
	}
}

func TestGlobalLogger_NilDefault(t *testing.T) {
	defaultLoggerMu.Lock()
	saved := defaultLogger
	defaultLogger = nil
	defaultLoggerMu.Unlock()
	defer func() {
		defaultLoggerMu.Lock()
		defaultLogger = saved
		defaultLoggerMu.Unlock()
	}()

	// None of these should panic before Init.
	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	if err := Close(); err != nil {
		t.Errorf("Close() with nil default logger should return nil, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}
