// Package settings models the daemon configuration editor.
//
// # Overview
//
// The editor works on raw string values with type metadata on the side:
// every field carries its key, section, declared type, the value as it was
// persisted (Original) and the value as it is being edited (Current). All
// divergence tracking reduces to comparing those two strings.
//
// # Field Types
//
// Each declared type is a FieldType implementation owning its own coercion
// rule, so call sites never type-sniff:
//
//   - BoolType: exactly "true" or "false"
//   - TextType: anything
//   - FloatType: decimal number, optionally bounded, with display precision
//   - EnumType: one of a fixed, ordered value list
//
// # Editing Operations
//
// SetValue validates then mutates Current only. CycleEnum walks an enum's
// values with wraparound; ToggleBool flips the canonical forms. Both reject
// fields of any other type with ErrWrongType and change nothing. A failed
// validation comes back as *ValidationError naming the field, and the prior
// value stays in place, so a bad keystroke never corrupts the form.
//
// # Save Contract
//
// The editor never writes configuration itself. An external save routine
// reads Diff() for the exact set of (key, original, current) changes, writes
// them durably, and then calls Commit(), which folds every Current into
// Original and drives HasChanges() back to false. Reload simply rebuilds the
// set via Load.
//
// # Loading
//
// Load parses the daemon's TOML file and materializes fields in schema
// order. Missing file or missing keys mean defaults; file keys outside the
// schema are ignored. Values are stored as strings regardless of their TOML
// type, normalized through one stringify step.
package settings
