// Package normalize canonicalizes raw feed records. The upstream document
// store is loosely schemed: the same concept arrives under several key
// spellings, dates in more than one format, and some model labels are legacy
// compounds. Everything downstream of this package works on canonical shapes.
package normalize

import (
	"strconv"
	"strings"
)

// Record is one raw feed row as decoded from the document store.
type Record = map[string]any

// Field returns the first present, non-nil value among the candidate keys,
// checked in priority order.
func Field(rec Record, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// HasField reports whether any candidate key exists in the record at all,
// regardless of its value. Callers that must distinguish "field absent" from
// "field present but empty" use this.
func HasField(rec Record, keys ...string) bool {
	for _, k := range keys {
		if _, ok := rec[k]; ok {
			return true
		}
	}
	return false
}

// StringField returns the first candidate value coerced to a trimmed string.
func StringField(rec Record, keys ...string) string {
	v, ok := Field(rec, keys...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// NumberField returns the first candidate value that parses as a number.
// Numeric strings count; anything else is skipped and the next key is tried.
func NumberField(rec Record, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case float32:
			return float64(n), true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}
