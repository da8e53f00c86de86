package logtail

import (
	"strings"
	"testing"
)

func TestNewEntry_Classification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Level
	}{
		{"info line", "2025-10-08 21:01:05 INFO [queue] – item accepted", LevelInfo},
		{"warn line", "2025-10-08 21:01:05 WARN [queue] – slow consumer", LevelWarn},
		{"error line", "2025-10-08 21:01:05 ERROR [queue] – write failed", LevelError},
		{"debug line", "2025-10-08 21:01:05 DEBUG [queue] – tick", LevelDebug},
		{"lowercase keyword", "error: disk full", LevelError},
		{"error outranks warn", "WARN while handling previous ERROR", LevelError},
		{"no keyword", "starting up", LevelUnknown},
		{"empty", "", LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry(tt.line)
			if e.Level != tt.want {
				t.Errorf("NewEntry(%q).Level = %v, want %v", tt.line, e.Level, tt.want)
			}
		})
	}
}

func TestNewEntry_ReplacesInvalidUTF8(t *testing.T) {
	raw := "INFO bad byte \xff here"
	e := NewEntry(raw)
	if !strings.Contains(e.Raw, "�") {
		t.Errorf("Raw = %q, want invalid byte replaced", e.Raw)
	}
	if e.Level != LevelInfo {
		t.Errorf("Level = %v, want LevelInfo", e.Level)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelUnknown, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
