// Package logtail maintains the bounded log history behind the dashboard.
//
// # Overview
//
// The daemon writes a plain-text log file; this package turns that growing
// file into an ordered, bounded sequence of classified entries without ever
// blocking the caller. It has three moving parts:
//
//  1. LoadTail: one-shot seed of the last N lines at startup, locating the
//     most recent session-start marker in the same pass
//  2. Tailer: incremental follow of lines appended after startup
//  3. History: the bounded buffer both of the above feed
//
// # Reading the Tail
//
// LoadTail uses a ring buffer of size maxLines so memory stays O(maxLines)
// regardless of file size. Lines come back in chronological order, along
// with the most recent line containing StartMarker, which the header uses
// to show when the current daemon session began.
//
// # Following the File
//
// Tailer keeps an open handle plus a confirmed byte offset. Poll reads only
// what is already on disk and returns immediately, so it can run inline with
// a render tick. Three rules keep it honest:
//
//   - The offset only advances past fully terminated lines; a trailing
//     partial line is re-read once its newline arrives.
//   - Rotation, truncation or deletion drops the cursor silently; the next
//     poll reopens at the file's current end, never at the stale offset.
//   - Blank lines are discarded, and invalid UTF-8 is replaced, not fatal.
//
// The tailer deliberately does not backfill: lines written while no cursor
// was held are skipped. Historical context is LoadTail's job, once.
//
// # History
//
// History holds at most MaxEntries entries. Overflow evicts exactly one
// entry per insertion, so a burst of appends degrades gracefully instead of
// truncating wholesale.
//
// # Classification and Color
//
// Each entry's level is derived once at construction by keyword match
// (ERROR before WARN, since a line can mention both). ColorizeLine applies
// a per-level lipgloss style for terminal display; unrecognized lines pass
// through untouched.
//
// # Error Handling
//
// Nothing in this package returns an error to the caller. A missing or
// unreadable file means an empty seed or a dropped cursor, retried on the
// next poll; a mid-stream read failure surfaces whatever complete lines
// were already read. The dashboard simply shows no new lines until the
// file comes back.
package logtail
