package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Unix second bounds of the years a timestamp can be formatted with.
var (
	minUnixSeconds = float64(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).Unix())
	maxUnixSeconds = float64(time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC).Unix())
)

// Trigger carries the per-run request. A nil TestTimestamp means a live run.
type Trigger struct {
	TestTimestamp *time.Time
}

// TestMode reports whether the trigger asks for a test run.
func (t Trigger) TestMode() bool {
	return t.TestTimestamp != nil
}

// TestTrigger returns a trigger for a test run at ts.
func TestTrigger(ts time.Time) Trigger {
	ts = ts.UTC()
	return Trigger{TestTimestamp: &ts}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339, BigQuery-style and date-only timestamps.
// Values without a zone are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// UnmarshalJSON decodes {"test_timestamp": ...} where the value is a string,
// a number of Unix seconds, or null.
func (t *Trigger) UnmarshalJSON(data []byte) error {
	var raw struct {
		TestTimestamp json.RawMessage `json:"test_timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode trigger: %w", err)
	}

	t.TestTimestamp = nil
	value := bytes.TrimSpace(raw.TestTimestamp)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return nil
	}

	if value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return fmt.Errorf("decode test_timestamp: %w", err)
		}
		ts, err := ParseTimestamp(s)
		if err != nil {
			return fmt.Errorf("decode test_timestamp: %w", err)
		}
		t.TestTimestamp = &ts
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(value, &seconds); err != nil {
		return fmt.Errorf("decode test_timestamp: %w", err)
	}
	if math.IsNaN(seconds) || seconds < minUnixSeconds || seconds > maxUnixSeconds {
		return fmt.Errorf("decode test_timestamp: %v seconds is out of range", seconds)
	}
	whole := math.Floor(seconds)
	ts := time.Unix(int64(whole), int64((seconds-whole)*1e9)).UTC()
	t.TestTimestamp = &ts
	return nil
}
