package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// now is the submission clock; tests replace it.
var now = time.Now

var errBadTimestamp = errors.New("timestamp must be RFC3339, YYYY-MM-DD or epoch milliseconds")

// resolveTimestamp applies the optional-timestamp rule: absent or null means
// submission time. The result is UTC, truncated to the store's millisecond
// resolution so what is stored is exactly what is read back.
func resolveTimestamp(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return now().UTC().Truncate(time.Millisecond), nil
	}

	ts, err := parseTimestamp(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC().Truncate(time.Millisecond), nil
}

func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, errBadTimestamp
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return t, nil
		}
		return time.Time{}, errBadTimestamp

	default:
		var ms json.Number
		if err := json.Unmarshal(raw, &ms); err != nil {
			return time.Time{}, errBadTimestamp
		}
		n, err := ms.Int64()
		if err != nil {
			return time.Time{}, errBadTimestamp
		}
		return time.UnixMilli(n), nil
	}
}
