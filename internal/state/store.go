package state

import (
	"strings"
	"sync"
	"time"

	"github.com/draklow/deckhand/internal/logtail"
)

// Snapshot is the log model a renderer reads each frame. Entries is an
// independent copy, so holding a snapshot across frames is safe.
type Snapshot struct {
	Entries      []logtail.Entry
	SessionStart string // most recent session-start marker line, if any
	HasSession   bool
	LastPoll     time.Time
	TotalSeen    int // monotonic count of entries ever recorded
	MissedPolls  int // consecutive polls without a log cursor
}

// LogUnavailable reports that the log file has been missing for multiple
// polls, as opposed to one transient rotation blip.
func (s Snapshot) LogUnavailable() bool {
	return s.MissedPolls >= 2
}

// Store coordinates access to the shared log model between the background
// poller and whoever renders it. The underlying history and tailer stay
// single-owner; the store is the only synchronization point.
type Store struct {
	mu           sync.RWMutex
	history      *logtail.History
	sessionStart string
	hasSession   bool
	lastPoll     time.Time
	totalSeen    int
	missedPolls  int
}

// NewStore returns a store with an empty history.
func NewStore() *Store {
	return &Store{history: logtail.NewHistory()}
}

// Seed installs the initial tail load and session marker. Called once at
// startup before the poller begins.
func (s *Store) Seed(entries []logtail.Entry, marker string, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.AppendBatch(entries)
	s.totalSeen += len(entries)
	s.sessionStart = marker
	s.hasSession = found
}

// Record appends one poll's worth of new entries. connected reports whether
// the tailer held a cursor for this cycle; a disconnected cycle bumps the
// missed-poll counter so the UI can flag a vanished log file.
func (s *Store) Record(entries []logtail.Entry, connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.AppendBatch(entries)
	s.totalSeen += len(entries)
	s.lastPoll = time.Now()
	if connected {
		s.missedPolls = 0
	} else {
		s.missedPolls++
	}

	// A fresh session marker may scroll past mid-flight.
	for _, e := range entries {
		if strings.Contains(e.Raw, logtail.StartMarker) {
			s.sessionStart = e.Raw
			s.hasSession = true
		}
	}
}

// Snapshot returns a copy of the current log model.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Entries:      s.history.Lines(),
		SessionStart: s.sessionStart,
		HasSession:   s.hasSession,
		LastPoll:     s.lastPoll,
		TotalSeen:    s.totalSeen,
		MissedPolls:  s.missedPolls,
	}
}
