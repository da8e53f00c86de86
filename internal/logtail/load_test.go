package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTail(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "daemon.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 12; i++ {
		line := fmt.Sprintf("line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log fixture: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"zero returns nothing", 0, nil},
		{"negative returns nothing", -1, nil},
		{"last five of twelve", 5, all[7:]},
		{"exactly all", 12, all},
		{"more than exists", 40, all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, _, _ := LoadTail(logPath, tt.maxLines)
			got := rawLines(entries)
			if len(got) != len(tt.expected) {
				t.Fatalf("LoadTail() returned %d lines, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadTail_FindsMostRecentMarker(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "daemon.log")
	lines := []string{
		"INFO " + StartMarker + " pid=100",
		"INFO running",
		"INFO shutdown",
		"INFO " + StartMarker + " pid=200",
		"INFO running again",
		"INFO still running",
	}
	if err := os.WriteFile(logPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log fixture: %v", err)
	}

	// Even when the marker line falls outside the retained tail, the same
	// pass must still report it.
	entries, marker, found := LoadTail(logPath, 2)
	if !found {
		t.Fatal("found = false, want marker located")
	}
	if marker != "INFO "+StartMarker+" pid=200" {
		t.Errorf("marker = %q, want the most recent one", marker)
	}
	got := rawLines(entries)
	if len(got) != 2 || got[0] != "INFO running again" || got[1] != "INFO still running" {
		t.Errorf("entries = %v, want last two lines", got)
	}
}

func TestLoadTail_NoMarker(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "daemon.log")
	if err := os.WriteFile(logPath, []byte("just a line\n"), 0o644); err != nil {
		t.Fatalf("write log fixture: %v", err)
	}
	_, marker, found := LoadTail(logPath, 10)
	if found || marker != "" {
		t.Errorf("got marker %q found=%v, want none", marker, found)
	}
}

func TestLoadTail_MissingFileReturnsEmpty(t *testing.T) {
	entries, marker, found := LoadTail(filepath.Join(t.TempDir(), "absent.log"), 10)
	if entries != nil || marker != "" || found {
		t.Errorf("LoadTail on missing file = (%v, %q, %v), want empty", entries, marker, found)
	}
}
