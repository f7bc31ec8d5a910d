package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := New(Config{Dir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closer()

	logger.Info("discarded")
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when disabled")
	}
}

func TestNewEnabledWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := New(Config{Enabled: true, Dir: dir, Level: "debug"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("spin completed", zap.Float64("rotation", 360))
	closer()

	data, err := os.ReadFile(Path(dir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "spin completed") {
		t.Errorf("Expected log file to contain message, got %q", string(data))
	}
	if !strings.Contains(string(data), "DEBUG") {
		t.Errorf("Expected level in log line, got %q", string(data))
	}
}

func TestNewLevelFilters(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := New(Config{Enabled: true, Dir: dir, Level: "warn"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer()

	data, _ := os.ReadFile(Path(dir))
	if strings.Contains(string(data), "hidden") {
		t.Error("Expected info line to be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("Expected warn line to be written")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(Config{Enabled: true, Dir: t.TempDir(), Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level")
	}
}
