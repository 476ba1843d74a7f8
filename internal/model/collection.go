package model

import (
	"fmt"
	"strconv"
)

// ParseCollection converts decoded input data into an ordered list of
// Animals.
//
// The data must be a sequence; any other shape (a single mapping, a
// scalar, nil) yields ErrNotACollection. Within the sequence every record
// degrades gracefully:
//   - a record that is not a mapping becomes an empty Animal
//   - a missing or non-mapping "characteristics" contributes no diet/type
//   - a missing, non-sequence or empty "locations" contributes no location;
//     otherwise only the first element is used
//
// Input order is preserved.
func ParseCollection(data any) ([]Animal, error) {
	items, ok := data.([]any)
	if !ok {
		return nil, ErrNotACollection
	}

	animals := make([]Animal, 0, len(items))
	for _, item := range items {
		animals = append(animals, parseAnimal(item))
	}
	return animals, nil
}

// parseAnimal extracts the optional fields of a single record.
func parseAnimal(item any) Animal {
	record, ok := asMapping(item)
	if !ok {
		return Animal{}
	}

	animal := Animal{Name: text(record["name"])}

	if characteristics, ok := asMapping(record["characteristics"]); ok {
		animal.Diet = text(characteristics["diet"])
		animal.Type = text(characteristics["type"])
	}

	if locations, ok := record["locations"].([]any); ok && len(locations) > 0 {
		animal.Location = text(locations[0])
	}

	return animal
}

// asMapping normalizes the two mapping shapes the decoders produce.
// encoding/json and yaml.v3 both use map[string]any for string keys, but
// yaml.v3 falls back to map[any]any when a key is not a string.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// text converts a decoded scalar into display text. Falsy values (nil,
// "", 0, false, empty sequences and mappings) become "" so callers can
// treat them as absent.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
		return strconv.FormatBool(t)
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	case int64:
		if t == 0 {
			return ""
		}
		return strconv.FormatInt(t, 10)
	case uint64:
		if t == 0 {
			return ""
		}
		return strconv.FormatUint(t, 10)
	case []any:
		if len(t) == 0 {
			return ""
		}
		return fmt.Sprint(t)
	case map[string]any:
		if len(t) == 0 {
			return ""
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}
