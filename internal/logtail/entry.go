package logtail

import "strings"

// Level classifies a log line by severity keyword.
type Level int

const (
	LevelUnknown Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the canonical upper-case name for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Entry is a single log line plus its derived level. Entries are immutable
// once constructed; the level is computed exactly once from the raw text.
type Entry struct {
	Raw   string
	Level Level
}

// NewEntry builds an entry from a raw line. Invalid UTF-8 bytes are replaced
// rather than rejected so a corrupt line still shows up in the history.
func NewEntry(raw string) Entry {
	raw = strings.ToValidUTF8(raw, "�")
	return Entry{Raw: raw, Level: classify(raw)}
}

func classify(line string) Level {
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "ERROR"):
		return LevelError
	case strings.Contains(upper, "WARN"):
		return LevelWarn
	case strings.Contains(upper, "DEBUG"):
		return LevelDebug
	case strings.Contains(upper, "INFO"):
		return LevelInfo
	}
	return LevelUnknown
}
