package normalize

import (
	"strings"
	"time"
)

// Accepted input date layouts, checked in order. The schedule feed mostly
// carries DD/MM/YYYY; newer feeds emit ISO dates or full RFC3339 timestamps.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate parses a free-text date. An unparseable or empty value yields
// ok=false, never an error; the record is then simply excluded from any
// date-bounded computation.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateField parses the first candidate key holding a parseable date.
func DateField(rec Record, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		switch d := v.(type) {
		case time.Time:
			return d, true
		case string:
			if t, ok := ParseDate(d); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
