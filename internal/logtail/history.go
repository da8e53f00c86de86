package logtail

// MaxEntries caps how many log lines a History retains.
const MaxEntries = 1000

// History is a bounded, ordered buffer of log entries. The oldest entry sits
// at the front; once full, each insertion evicts exactly one entry from the
// front, so relative order always matches arrival order even under bursts.
type History struct {
	entries []Entry
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append inserts an entry at the back, evicting the single oldest entry when
// the buffer is already full. It never fails.
func (h *History) Append(e Entry) {
	if len(h.entries) == MaxEntries {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = e
		return
	}
	h.entries = append(h.entries, e)
}

// AppendBatch appends each entry in order. Eviction happens per entry, not
// as a single truncation, so intermediate states match real-time arrival.
func (h *History) AppendBatch(entries []Entry) {
	for _, e := range entries {
		h.Append(e)
	}
}

// Len reports the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Lines returns a copy of the retained entries, oldest first.
func (h *History) Lines() []Entry {
	if len(h.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(h.entries))
	copy(dup, h.entries)
	return dup
}
