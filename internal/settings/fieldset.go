package settings

import "fmt"

// Direction selects which way CycleEnum walks the allowed values.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// FieldSet owns an ordered collection of fields, grouped by section in load
// order. Keys are unique within a section; operations resolve a bare key to
// the first field carrying it.
type FieldSet struct {
	fields []*Field
}

// NewFieldSet builds a set over the given fields, preserving their order.
func NewFieldSet(fields []*Field) *FieldSet {
	return &FieldSet{fields: fields}
}

// Fields returns the fields in load order.
func (s *FieldSet) Fields() []*Field {
	return s.fields
}

// Field returns the first field with the given key, or nil.
func (s *FieldSet) Field(key string) *Field {
	for _, f := range s.fields {
		if f.Key == key {
			return f
		}
	}
	return nil
}

// SetValue validates raw against the field's declared type and, on success,
// replaces only the current value. A coercion failure comes back as a
// *ValidationError and leaves the field exactly as it was.
func (s *FieldSet) SetValue(key, raw string) error {
	f := s.Field(key)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := f.Type.Validate(raw); err != nil {
		return &ValidationError{Key: key, Value: raw, Err: err}
	}
	f.Current = raw
	return nil
}

// CycleEnum advances an enum field's current value to the next or previous
// allowed value, wrapping at either end. Non-enum fields are rejected with
// ErrWrongType and left untouched.
func (s *FieldSet) CycleEnum(key string, dir Direction) error {
	f := s.Field(key)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	enum, ok := f.Type.(EnumType)
	if !ok {
		return fmt.Errorf("%w: %s is %s", ErrWrongType, key, f.Type.Name())
	}
	if len(enum.Values) == 0 {
		return nil
	}
	idx := 0
	for i, v := range enum.Values {
		if v == f.Current {
			idx = i
			break
		}
	}
	step := 1
	if dir == Backward {
		step = len(enum.Values) - 1
	}
	f.Current = enum.Values[(idx+step)%len(enum.Values)]
	return nil
}

// ToggleBool flips a bool field between "true" and "false". Non-bool fields
// are rejected with ErrWrongType and left untouched.
func (s *FieldSet) ToggleBool(key string) error {
	f := s.Field(key)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if _, ok := f.Type.(BoolType); !ok {
		return fmt.Errorf("%w: %s is %s", ErrWrongType, key, f.Type.Name())
	}
	if f.Current == "true" {
		f.Current = "false"
	} else {
		f.Current = "true"
	}
	return nil
}

// Change records one modified field for the external save routine.
type Change struct {
	Key      string
	Section  string
	Original string
	Current  string
}

// Diff lists every modified field in set order. This is the exact contract
// the save routine relies on to know what to write.
func (s *FieldSet) Diff() []Change {
	var changes []Change
	for _, f := range s.fields {
		if f.IsModified() {
			changes = append(changes, Change{
				Key:      f.Key,
				Section:  f.Section,
				Original: f.Original,
				Current:  f.Current,
			})
		}
	}
	return changes
}

// HasChanges reports whether any field is modified. It walks the fields on
// every call; nothing is cached, so it can never go stale.
func (s *FieldSet) HasChanges() bool {
	for _, f := range s.fields {
		if f.IsModified() {
			return true
		}
	}
	return false
}

// Commit marks every current value as persisted. The external writer calls
// this only after it has durably stored the diff.
func (s *FieldSet) Commit() {
	for _, f := range s.fields {
		f.Original = f.Current
	}
}
