package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llehouerou/decoded/internal/logging"
)

func TestNewWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "decoded.log")

	logger, closer, err := logging.New(logging.Options{Level: "info", Path: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("episode started", "episode", "cs11-ch1")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "episode started") || !strings.Contains(text, "cs11-ch1") {
		t.Errorf("log missing record: %q", text)
	}
	if strings.Contains(text, "hidden") {
		t.Errorf("debug record written at info level: %q", text)
	}
	if strings.Contains(text, ".go:") {
		t.Errorf("expected no caller information in info logs, got %q", text)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWriter(&buf, logging.Options{Level: "debug"})
	if err != nil {
		t.Fatalf("NewWriter returned error: %v", err)
	}
	logger.Debug("with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("expected caller in debug logs, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "level=debug") {
		t.Errorf("expected lower-case level, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWriter(&buf, logging.Options{Level: "warn", Format: "JSON"})
	if err != nil {
		t.Fatalf("NewWriter returned error: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("playback failed", "episode", "cs11-ch2")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected exactly one JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "playback failed" || record["level"] != "warn" || record["episode"] != "cs11-ch2" {
		t.Errorf("record = %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Errorf("record has no ts field: %v", record)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.NewWriter(&bytes.Buffer{}, logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNop(t *testing.T) {
	logging.NewNop().Error("nothing happens")
}
