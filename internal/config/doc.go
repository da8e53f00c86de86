// Package config handles loading and parsing ferryd daemon configuration files.
//
// # Overview
//
// This package reads ferryd's TOML configuration to discover the daemon's log
// file location, and declares which of ferryd's fields the settings editor
// may offer for editing. Deckhand itself only consumes a small slice of the
// full ferryd configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ferryd/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Missing config files are NOT an error; defaults let deckhand start on a
// fresh machine and begin following the log the moment ferryd writes it.
//
// # Default Values
//
//   - Config file: ~/.config/ferryd/config.toml
//   - Log directory: ~/.local/share/ferryd/logs
//   - Daemon log: <log_dir>/ferryd.log
//
// Tilde expansion is performed for the config path, the log_dir field and
// every derived path.
//
// # Editable Field Schema
//
// EditableFields is the bridge to the settings package: it declares each
// offered field's section, key, declared type (with enum values and float
// bounds) and default. The settings editor materializes its field set from
// this schema plus the file's current values, so adding an editable field is
// a one-line change here.
package config
