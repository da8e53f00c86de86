package app

import (
	"context"
	"fmt"
	"time"

	"github.com/draklow/deckhand/internal/logtail"
	"github.com/draklow/deckhand/internal/state"
)

// follow prints the seeded history and then every new line as the poller
// records it, until the context is cancelled. It reads only store snapshots,
// the same surface a full-screen renderer would consume.
func follow(ctx context.Context, store *state.Store, color bool, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := 0
	for {
		snap := store.Snapshot()
		fresh := snap.TotalSeen - seen
		if fresh > 0 {
			entries := snap.Entries
			if fresh > len(entries) {
				// Lines arrived and were evicted before this frame.
				fresh = len(entries)
			}
			for _, e := range entries[len(entries)-fresh:] {
				line := e.Raw
				if color {
					line = logtail.ColorizeLine(e)
				}
				fmt.Println(line)
			}
			seen = snap.TotalSeen
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
