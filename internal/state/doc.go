// Package state provides thread-safe sharing of the log model.
//
// The core types in logtail are deliberately single-owner with no locking;
// Store is the one synchronization boundary around them, sitting between
// the background poller (writer) and whatever renders the dashboard
// (reader). Readers get value-copy Snapshots, so a renderer can hold one
// across a frame without racing the next poll.
//
// Beyond the bounded entry list, the store tracks the most recent
// session-start marker (seeded at startup, refreshed when a new one scrolls
// past) and a consecutive missed-poll counter that lets the UI distinguish
// "log file briefly rotating" from "log file gone."
package state
