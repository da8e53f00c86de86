package app

import (
	"context"
	"fmt"
	"time"

	"github.com/draklow/deckhand/internal/config"
	"github.com/draklow/deckhand/internal/logtail"
	"github.com/draklow/deckhand/internal/prefs"
	"github.com/draklow/deckhand/internal/settings"
	"github.com/draklow/deckhand/internal/state"
)

// Options configure the deckhand session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/deckhand/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run seeds the log history, starts the background poller and follows the
// daemon log until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load ferryd config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	store := state.NewStore()
	logPath := cfg.DaemonLogPath()

	tailDepth := userPrefs.TailLines
	if tailDepth > logtail.MaxEntries {
		tailDepth = logtail.MaxEntries
	}
	entries, marker, found := logtail.LoadTail(logPath, tailDepth)
	store.Seed(entries, marker, found)

	tailer := logtail.Open(logPath)
	defer tailer.Close()

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	StartPoller(ctx, store, tailer, interval)

	return follow(ctx, store, userPrefs.UseColor(), interval)
}

// ShowConfig loads the daemon configuration through the settings schema and
// prints it grouped by section, flagging modified fields. It is the quick
// non-interactive view of what the editor would offer.
func ShowConfig(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load ferryd config: %w", err)
	}

	set, err := settings.Load(cfg.Path, config.EditableFields())
	if err != nil {
		return fmt.Errorf("load editable fields: %w", err)
	}

	section := ""
	for _, f := range set.Fields() {
		if f.Section != section {
			if section != "" {
				fmt.Println()
			}
			section = f.Section
			fmt.Printf("[%s]\n", section)
		}
		fmt.Printf("  %-14s %s\n", f.Key, settings.FormatDisplay(f))
	}
	return nil
}
