package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDirWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	if err := InitDir(dir); err != nil {
		t.Fatalf("InitDir() error: %v", err)
	}
	slog.Info("task created", "task_id", "abc")

	data, err := os.ReadFile(filepath.Join(dir, "taskflow.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "task_id=abc") {
		t.Errorf("log file missing record, got %q", data)
	}
}
