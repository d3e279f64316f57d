package keenergy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Entry is one coerced value read from the controller together with the
// filtered device attributes.
type Entry struct {
	Value      any
	Attributes map[string]string
}

// Float returns the entry value as float64 when the field kind is real.
func (e Entry) Float() float64 {
	f, _ := e.Value.(float64)
	return f
}

// Int returns the entry value as int when the field kind is integer.
func (e Entry) Int() int {
	i, _ := e.Value.(int)
	return i
}

// String returns the entry value rendered as text.
func (e Entry) String() string {
	if s, ok := e.Value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", e.Value)
}

// coerceValue turns the raw wire text into the field's value domain. With
// humanReadable set, enumerated integers come back as their lower-cased
// symbolic names.
func coerceValue(f *Field, raw string, humanReadable bool) (any, error) {
	var v any
	switch f.Kind {
	case KindReal:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q as real: %w", raw, err)
		}
		v = math.Round(parsed*100) / 100
	case KindInteger:
		n, err := parseWireInt(raw)
		if err != nil {
			return nil, err
		}
		v = n
	case KindText:
		// The firmware reports some booleans as text literals.
		switch raw {
		case "true":
			v = 1
		case "false":
			v = 0
		default:
			v = raw
		}
	default:
		return nil, fmt.Errorf("unknown value kind %d", f.Kind)
	}

	if humanReadable && f.Enum != nil {
		n, ok := v.(int)
		if !ok {
			return nil, f.Enum.invalidValue(v)
		}
		name, ok := f.Enum.NameOf(n)
		if !ok {
			return nil, f.Enum.invalidValue(n)
		}
		v = strings.ToLower(name)
	}
	return v, nil
}

func parseWireInt(raw string) (int, error) {
	switch raw {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	// Some firmware versions render integers with a fractional part.
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as integer: %w", raw, err)
	}
	return int(parsed), nil
}

// droppedAttributes are device metadata keys that never reach the caller.
var droppedAttributes = map[string]bool{
	"unitId":        true,
	"longText":      true,
	"formatId":      true,
	"dynLowerLimit": true,
	"dynUpperLimit": true,
}

// filterAttributes removes internal metadata keys and converts the remaining
// keys from camelCase to snake_case.
func filterAttributes(attrs map[string]string) map[string]string {
	if len(attrs) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if droppedAttributes[k] {
			continue
		}
		out[camelToSnake(k)] = v
	}
	return out
}

func camelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatWriteValue renders a caller value into its wire form. Enumerated
// fields accept symbolic names (case-insensitive) or member integers; any
// other value fails with the enum's allowed-values message.
func formatWriteValue(f *Field, v any) (string, error) {
	if f.Enum != nil {
		switch val := v.(type) {
		case string:
			n, ok := f.Enum.ValueOf(val)
			if !ok {
				return "", f.Enum.invalidValue(val)
			}
			return strconv.Itoa(n), nil
		case int:
			if _, ok := f.Enum.NameOf(val); !ok {
				return "", f.Enum.invalidValue(val)
			}
			return strconv.Itoa(val), nil
		default:
			return "", f.Enum.invalidValue(v)
		}
	}

	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		if val {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	default:
		return fmt.Sprintf("%v", val), nil
	}
}
