package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKey reports an operation against a key the set does not hold.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrWrongType reports an operation that does not apply to the field's
	// declared type, such as cycling a non-enum. The field is left untouched.
	ErrWrongType = errors.New("operation does not apply to field type")
)

// ValidationError reports a rejected edit. The field keeps its prior value;
// the message names the offending field for inline display.
type ValidationError struct {
	Key   string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FieldType carries the validation rule for one declared field type. Each
// concrete type owns its own coercion logic so call sites never sniff values.
type FieldType interface {
	Name() string
	Validate(raw string) error
}

// BoolType accepts the two canonical forms "true" and "false".
type BoolType struct{}

func (BoolType) Name() string { return "bool" }

func (BoolType) Validate(raw string) error {
	if raw != "true" && raw != "false" {
		return fmt.Errorf("want true or false, got %q", raw)
	}
	return nil
}

// TextType accepts any string.
type TextType struct{}

func (TextType) Name() string { return "text" }

func (TextType) Validate(string) error { return nil }

// FloatType accepts decimal numbers, optionally bounded to [Min, Max].
// Precision is display metadata; stored values keep what the user typed.
type FloatType struct {
	Min, Max  float64
	Precision int
	Bounded   bool
}

func (FloatType) Name() string { return "float" }

func (t FloatType) Validate(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	if t.Bounded && (v < t.Min || v > t.Max) {
		return fmt.Errorf("%v outside range %v to %v", v, t.Min, t.Max)
	}
	return nil
}

// EnumType accepts only its fixed, ordered set of values.
type EnumType struct {
	Values []string
}

func (EnumType) Name() string { return "enum" }

func (t EnumType) Validate(raw string) error {
	for _, v := range t.Values {
		if v == raw {
			return nil
		}
	}
	return fmt.Errorf("%q not one of %s", raw, strings.Join(t.Values, ", "))
}

// Field is one editable configuration entry. Original is fixed at load time
// and moves only on Commit; Current carries the in-progress edit.
type Field struct {
	Key      string
	Section  string
	Type     FieldType
	Original string
	Current  string
}

// IsModified reports whether the current value has diverged from the
// persisted one.
func (f *Field) IsModified() bool {
	return f.Current != f.Original
}

// FormatDisplay renders a field's current value for the editor pane. Free
// text that does not parse as a number is quoted so it reads unambiguously
// next to numeric-looking neighbors; everything else is shown as stored.
func FormatDisplay(f *Field) string {
	if _, ok := f.Type.(TextType); ok {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f.Current), 64); err != nil {
			return strconv.Quote(f.Current)
		}
	}
	return f.Current
}
