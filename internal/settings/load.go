package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Spec declares one editable field: where it lives in the daemon's TOML
// file, its type, and the default used when the file omits it.
type Spec struct {
	Section string
	Key     string
	Type    FieldType
	Default string
}

// Load parses the daemon config at path and builds a field set following
// schema order. A missing file is not an error; every field simply starts at
// its default. Keys present in the file but absent from the schema are
// ignored, since the editor only offers what it knows how to validate.
func Load(path string, schema []Spec) (*FieldSet, error) {
	raw := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	set := &FieldSet{}
	seen := make(map[string]bool, len(schema))
	for _, spec := range schema {
		id := spec.Section + "." + spec.Key
		if seen[id] {
			return nil, fmt.Errorf("duplicate field %s in schema", id)
		}
		seen[id] = true

		value := spec.Default
		if v, ok := lookup(raw, spec.Section, spec.Key); ok {
			value = v
		}
		set.fields = append(set.fields, &Field{
			Key:      spec.Key,
			Section:  spec.Section,
			Type:     spec.Type,
			Original: value,
			Current:  value,
		})
	}
	return set, nil
}

func lookup(raw map[string]any, section, key string) (string, bool) {
	node := raw
	if section != "" {
		sub, ok := raw[section].(map[string]any)
		if !ok {
			return "", false
		}
		node = sub
	}
	v, ok := node[key]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
