package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errNotText = errors.New("value cannot be cast to text")

// castText converts a raw JSON scalar to the text that gets stored.
// Absent and null become "", which the store rejects as missing.
// Numbers and booleans keep their literal form; objects and arrays fail.
func castText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errNotText
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return "", errNotText
		}
		return strconv.FormatBool(b), nil
	case '{', '[':
		return "", errNotText
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", errNotText
		}
		f, err := n.Float64()
		if err != nil {
			return "", errNotText
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}
