// Package app provides the orchestration layer for deckhand.
//
// # Overview
//
// This package wires configuration, the log pipeline and user preferences
// into a running session. It is the composition root; nothing here carries
// domain logic of its own.
//
// # Startup Sequence
//
//  1. Load ferryd's configuration to find the daemon log path
//  2. Load deckhand's own preferences (tail depth, color mode)
//  3. Seed the state store via logtail.LoadTail, including the most recent
//     session-start marker
//  4. Open the tailer at the log's current end
//  5. Launch the background poller goroutine
//  6. Follow the store's snapshots until the context is cancelled
//
// # Polling
//
// The poller is the only writer to the store. Each cycle it drains the
// tailer's newly completed lines and records them together with whether a
// cursor was held, which feeds the store's missed-poll counter. While the
// log file is missing the poll wait backs off exponentially (capped at 30s)
// and snaps back to the base interval the moment the file returns; the
// retry itself is automatic and silent, matching the tailer's
// degrade-and-reopen behavior.
//
// ShowConfig is the one-shot sibling of Run: it loads the editable field
// set through the schema in the config package and prints it, giving the
// settings editor's view of the daemon config without starting a session.
package app
