package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimestamp(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 789_999_999, time.FixedZone("CET", 3600))
	freezeClock(t, at)

	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"absent", ``, at.UTC().Truncate(time.Millisecond)},
		{"null", `null`, at.UTC().Truncate(time.Millisecond)},
		{"rfc3339", `"2024-05-06T07:08:09Z"`, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		{"rfc3339 with offset", `"2024-05-06T09:08:09+02:00"`, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		{"fraction truncated to millis", `"2024-05-06T07:08:09.123456Z"`, time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)},
		{"date only", `"2024-05-06"`, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1714979289123`, time.UnixMilli(1714979289123).UTC()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveTimestamp(json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestResolveTimestamp_Rejects(t *testing.T) {
	for _, raw := range []string{`"yesterday"`, `true`, `{}`, `[1]`, `1.5`} {
		_, err := resolveTimestamp(json.RawMessage(raw))
		assert.ErrorIs(t, err, errBadTimestamp, "raw %s", raw)
	}
}
