package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLogger_WithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).With("service", "image_edit")
	l.Info("image_edit_successfully", "duration_us", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "image_edit_successfully" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["service"] != "image_edit" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["duration_us"] != float64(12) {
		t.Errorf("duration_us = %v", entry["duration_us"])
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	l.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("warn was filtered")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
