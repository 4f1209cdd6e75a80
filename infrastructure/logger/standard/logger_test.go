package standard

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewStandardLogger(t *testing.T) {
	logger := NewStandardLogger()

	if logger == nil {
		t.Fatal("NewStandardLogger returned nil")
	}
	if logger.entry.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", logger.entry.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"nonsense", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStandardLogger_JSONFields(t *testing.T) {
	logger := NewLogger(Options{Level: "debug", Format: "json"})
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("Loaded cocktails", map[string]interface{}{
		"operation": "search_by_name",
		"count":     25,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "Loaded cocktails" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["operation"] != "search_by_name" {
		t.Errorf("operation = %v", entry["operation"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestStandardLogger_LevelFiltering(t *testing.T) {
	logger := NewLogger(Options{Level: "warn"})
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("visible warn", nil)
	logger.Error("visible error", map[string]interface{}{"code": 500})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output should not contain filtered messages: %s", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("output missing warn/error messages: %s", out)
	}
}

func TestStandardLogger_NilFields(t *testing.T) {
	logger := NewStandardLogger()
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("no fields", nil)

	if !strings.Contains(buf.String(), "no fields") {
		t.Errorf("output = %s", buf.String())
	}
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocktails.log")
	logger := NewLogger(Options{File: path})

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	logger.Info("written to file", nil)
}
