package dukascopy

import (
	"context"
	"time"

	"fx-data/internal/model"
)

// Feed is the abstraction the scheduler uses to fetch one hour bucket of ticks.
// Implementations return a nil/empty slice for buckets with no data; only
// cancellation and programmer errors surface as errors.
type Feed interface {
	FetchHour(ctx context.Context, symbol string, hour time.Time) ([]model.Tick, error)
}
