package logtail

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
)

// Tailer incrementally reads complete lines appended to a single log file.
// The cursor (open handle plus confirmed offset) only ever moves forward past
// fully terminated lines; a partial trailing line is left in place until a
// later poll sees its newline.
//
// When the file is rotated, truncated or removed, the cursor is dropped
// silently and the next poll reopens at the current end of the file, never at
// the old offset, so historical lines are not replayed after rotation.
type Tailer struct {
	path   string
	file   *os.File
	offset int64
}

// Open creates a tailer for path and attempts to establish a cursor at the
// current end of the file. A missing or unreadable file is not an error; the
// cursor is simply absent until a later poll finds the file.
func Open(path string) *Tailer {
	t := &Tailer{path: path}
	t.openAtEnd()
	return t
}

// Connected reports whether the tailer currently holds an open cursor.
func (t *Tailer) Connected() bool {
	return t.file != nil
}

// Close releases the cursor, if any.
func (t *Tailer) Close() {
	t.drop()
}

// Poll returns entries for any complete lines written since the last call.
// It never blocks: with no new data it returns immediately with nil. With no
// cursor it attempts a reopen at end-of-file and returns nil for this cycle,
// so lines written while the file was unavailable are skipped, not replayed.
// A mid-stream read error ends the call early with whatever complete lines
// were already read.
func (t *Tailer) Poll() []Entry {
	if t.file == nil {
		t.openAtEnd()
		return nil
	}

	info, err := os.Stat(t.path)
	if err != nil {
		t.drop()
		return nil
	}
	cur, err := t.file.Stat()
	if err != nil || !os.SameFile(info, cur) || info.Size() < t.offset {
		// Rotated or truncated underneath us.
		t.drop()
		return nil
	}
	if info.Size() == t.offset {
		return nil
	}

	buf := make([]byte, info.Size()-t.offset)
	n, err := t.file.ReadAt(buf, t.offset)
	if n <= 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			t.drop()
		}
		return nil
	}
	buf = buf[:n]

	end := bytes.LastIndexByte(buf, '\n')
	if end < 0 {
		// Only a partial line so far; wait for its terminator.
		return nil
	}
	chunk := buf[:end]
	t.offset += int64(end) + 1

	var entries []Entry
	for _, line := range bytes.Split(chunk, []byte{'\n'}) {
		text := strings.TrimRight(string(line), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		entries = append(entries, NewEntry(text))
	}
	return entries
}

func (t *Tailer) openAtEnd() {
	f, err := os.Open(t.path)
	if err != nil {
		return
	}
	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return
	}
	t.file = f
	t.offset = offset
}

func (t *Tailer) drop() {
	if t.file != nil {
		t.file.Close()
		t.file = nil
	}
	t.offset = 0
}
