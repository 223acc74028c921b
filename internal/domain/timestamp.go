package domain

import (
	"strings"
	"time"
)

// Timestamp wraps time.Time with tolerant JSON decoding. Upstream records
// carry optional ISO-8601 strings in a handful of historical shapes; a
// missing, null or unparsable value decodes to the zero time instead of
// failing the whole record.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw timestamp string, returning the zero time for
// anything unparsable.
func ParseTimestamp(raw string) Timestamp {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{Time: t}
		}
	}
	return Timestamp{}
}

// UnmarshalJSON accepts a JSON string or null; malformed input yields the
// zero value rather than an error.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*ts = Timestamp{}
		return nil
	}
	s = strings.Trim(s, `"`)
	*ts = ParseTimestamp(s)
	return nil
}

// MarshalJSON renders RFC 3339, or null for the zero value.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.Format(time.RFC3339) + `"`), nil
}
