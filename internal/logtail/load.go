package logtail

import (
	"bufio"
	"os"
	"strings"
)

// StartMarker identifies the daemon's session boundary line.
const StartMarker = "server start"

// LoadTail reads the file at path once and returns at most maxLines entries
// from its end, oldest first. In the same pass it tracks the most recent line
// containing StartMarker; the bool reports whether any such line was seen.
//
// A file that cannot be opened yields an empty result rather than an error,
// since the dashboard starts the same way whether or not the daemon has
// written anything yet. A read error mid-file yields whatever was scanned.
func LoadTail(path string, maxLines int) ([]Entry, string, bool) {
	if maxLines <= 0 {
		return nil, "", false
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", false
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	marker := ""
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, StartMarker) {
			// Overwritten on every match, so the last one wins.
			marker = line
			found = true
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}

	entries := make([]Entry, 0, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			entries = append(entries, NewEntry(ring[(idx+i)%maxLines]))
		}
	} else {
		for i := 0; i < count; i++ {
			entries = append(entries, NewEntry(ring[i]))
		}
	}
	return entries, marker, found
}
