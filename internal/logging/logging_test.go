package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric.log")

	logger, err := Build(Config{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	logger.Debug("priced fabric")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"priced fabric"`) {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestBuildRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric.log")

	logger, err := Build(Config{Level: "error", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	logger.Info("dropped")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("info entry should be filtered at error level, got %s", data)
	}
}
