package resample

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInterval parses a bar interval. Accepts Go duration syntax ("1m", "90s",
// "4h") plus pandas-style aliases ("1min", "5min", "1H", "1D") so interval flags
// stay compatible with common charting tooling. Unknown syntax or non-positive
// durations are an error, reported before any network activity.
func ParseInterval(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty interval")
	}
	for _, alias := range []struct {
		suffix string
		unit   time.Duration
	}{
		{"min", time.Minute},
		{"H", time.Hour},
		{"D", 24 * time.Hour},
		{"d", 24 * time.Hour},
	} {
		if n, ok := cutSuffixInt(trimmed, alias.suffix); ok {
			if n <= 0 {
				return 0, fmt.Errorf("invalid interval %q", s)
			}
			return time.Duration(n) * alias.unit, nil
		}
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid interval %q", s)
	}
	return d, nil
}

// cutSuffixInt splits "5min" into (5, true). A bare suffix ("min") counts as 1.
func cutSuffixInt(s, suffix string) (int, bool) {
	prefix, ok := strings.CutSuffix(s, suffix)
	if !ok {
		return 0, false
	}
	if prefix == "" {
		return 1, true
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return n, true
}
