package app

import (
	"context"
	"log"
	"time"

	"github.com/draklow/deckhand/internal/logtail"
	"github.com/draklow/deckhand/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that polls the tailer and
// records new entries into the store. It returns immediately. While the log
// file is unavailable the wait between polls backs off exponentially, capped
// at maxBackoff, and snaps back to the base interval on reconnect.
func StartPoller(ctx context.Context, store *state.Store, tailer *logtail.Tailer, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		failures := 0
		for {
			entries := tailer.Poll()
			connected := tailer.Connected()
			store.Record(entries, connected)

			if connected {
				failures = 0
			} else {
				failures++
				if failures == 1 {
					log.Printf("log file unavailable, waiting for it to return")
				}
			}

			wait := interval
			if !connected {
				wait = calculateBackoff(failures, interval)
			}
			timer.Reset(wait)

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
