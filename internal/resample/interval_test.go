package resample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	cases := map[string]time.Duration{
		"1min":   time.Minute,
		"5min":   5 * time.Minute,
		"15min":  15 * time.Minute,
		"min":    time.Minute,
		"1H":     time.Hour,
		"4H":     4 * time.Hour,
		"1D":     24 * time.Hour,
		"1d":     24 * time.Hour,
		"1m":     time.Minute,
		"90s":    90 * time.Second,
		"1h":     time.Hour,
		" 5min ": 5 * time.Minute,
	}
	for in, want := range cases {
		got, err := ParseInterval(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseIntervalRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "banana", "0min", "-5min", "-1h", "0s", "5 min", "1Min"} {
		_, err := ParseInterval(in)
		assert.Error(t, err, "input %q", in)
	}
}
