package note

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time with RFC3339 JSON round-tripping and a zero-safe
// encoding (the zero value persists as the empty string).
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// Millis converts a wall-clock instant to unix milliseconds, the encoding the
// persisted records use for nextResetAt.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts a persisted unix-millisecond value back to local time.
// The zero value maps to the zero time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
