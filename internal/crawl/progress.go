package crawl

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// ProgressUpdate is emitted as each hour bucket completes, independent of
// completion order. Done/Total report overall run progress.
type ProgressUpdate struct {
	Symbol string
	Hour   time.Time
	Done   int
	Total  int
	Ticks  int
}

const dayFormat = "2006-01-02"

func loadProgress(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(map[string]string)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return make(map[string]string)
	}
	return m
}

// LastCompleted returns the last completed bucket day recorded for symbol.
func LastCompleted(path, symbol string) (time.Time, bool) {
	m := loadProgress(path)
	s, ok := m[symbol]
	if !ok {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(dayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// RunProgressWriter receives updates and persists the latest completed bucket day
// per symbol (run as goroutine). Buckets complete out of order, so only forward
// movement is recorded, and only for buckets that carried data: a run that dies
// with nothing fetched must not advance the resume point.
func RunProgressWriter(path string, updates <-chan ProgressUpdate) {
	m := loadProgress(path)
	for u := range updates {
		if u.Ticks == 0 {
			continue
		}
		day := u.Hour.UTC().Format(dayFormat)
		if prev, ok := m[u.Symbol]; ok && prev >= day {
			continue
		}
		m[u.Symbol] = day
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			slog.Warn("progress marshal error", "error", err)
			continue
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			slog.Warn("progress write error", "error", err)
		}
	}
}
