// Package crawl schedules hour-bucket fetches across a bounded worker pool and
// merges the per-hour tick lists into one collection.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fx-data/internal/dukascopy"
	"fx-data/internal/model"
	"fx-data/internal/slogx"
)

// DefaultWorkers bounds parallel bucket fetches when the caller passes 0.
const DefaultWorkers = 8

// ErrNoData is returned when no bucket in the range yielded a single tick.
var ErrNoData = errors.New("no ticks fetched for any hour bucket")

// Job is one fetch unit: a symbol plus an hour bucket start.
type Job struct {
	Symbol string
	Hour   time.Time
}

// JobResult is sent by workers for fan-in.
type JobResult struct {
	Hour  time.Time
	Ticks []model.Tick
	Err   error
}

// HourRange enumerates hour buckets from floor(start, day) through the hour
// containing end, inclusive.
func HourRange(start, end time.Time) []time.Time {
	start = start.UTC()
	end = end.UTC()
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	var hours []time.Time
	for !cur.After(end) {
		hours = append(hours, cur)
		cur = cur.Add(time.Hour)
	}
	return hours
}

// Run fetches every hour bucket in [floor(start, day), end] with a pool of
// `workers` goroutines and merges the results. Individual empty or failed buckets
// are fine; a run with zero ticks overall returns ErrNoData. On shutdown or
// context cancellation in-flight buckets finish or are abandoned and whatever was
// merged so far is returned.
func Run(
	ctx context.Context,
	feed dukascopy.Feed,
	symbol string,
	start, end time.Time,
	workers int,
	progress chan<- ProgressUpdate,
	shutdown <-chan struct{},
) ([]model.Tick, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid range: end %s before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	hours := HourRange(start, end)
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(hours) {
		workers = len(hours)
	}

	logs := make(chan string, 2048)
	logger := slogx.NewChanLogger(logs)
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		runLogWriter(logs)
	}()

	if f, ok := feed.(*dukascopy.Fetcher); ok {
		f.LogFunc = func(msg string) { logger.Info(msg) }
		defer func() { f.LogFunc = nil }()
	}
	defer func() {
		close(logs)
		logWg.Wait()
	}()

	slog.Info("fetching hour buckets", "symbol", symbol, "hours", len(hours), "workers", workers,
		"from", hours[0].Format("2006-01-02 15:04"), "to", hours[len(hours)-1].Format("2006-01-02 15:04"))

	pending := make(chan Job, len(hours))
	for _, h := range hours {
		pending <- Job{Symbol: symbol, Hour: h}
	}
	close(pending)

	results := make(chan JobResult, workers)

	var mu sync.Mutex
	var done, failed, tickTotal int
	merged := make(chan []model.Tick, 1)
	var resWg sync.WaitGroup
	resWg.Add(1)
	go func() {
		defer resWg.Done()
		merged <- collect(results, len(hours), symbol, progress, logger, &mu, &done, &failed, &tickTotal)
	}()

	hbCtx, hbCancel := context.WithCancel(context.Background())
	var hbWg sync.WaitGroup
	hbWg.Add(1)
	go func() {
		defer hbWg.Done()
		runHeartbeat(hbCtx, 30*time.Second, len(hours), &mu, &done, &failed, &tickTotal, logger)
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-shutdown:
					return
				case <-ctx.Done():
					return
				case job, ok := <-pending:
					if !ok {
						return
					}
					ticks, err := feed.FetchHour(ctx, job.Symbol, job.Hour)
					results <- JobResult{Hour: job.Hour, Ticks: ticks, Err: err}
				}
			}
		}()
	}
	wg.Wait()
	close(results)
	resWg.Wait()
	hbCancel()
	hbWg.Wait()

	all := <-merged
	logger.Info("fetch done", "buckets", len(hours), "completed", done, "failed", failed, "ticks", len(all))
	if len(all) == 0 {
		return nil, ErrNoData
	}
	return all, nil
}

// collect fans in worker results, merges tick lists and emits progress events.
// Counter updates are shared with the heartbeat under mu.
func collect(
	results <-chan JobResult,
	total int,
	symbol string,
	progress chan<- ProgressUpdate,
	logger *slog.Logger,
	mu *sync.Mutex,
	done, failed, tickTotal *int,
) []model.Tick {
	var all []model.Tick
	for r := range results {
		mu.Lock()
		*done++
		if r.Err != nil {
			*failed++
		}
		*tickTotal += len(r.Ticks)
		d := *done
		mu.Unlock()

		if r.Err != nil {
			logger.Warn("bucket failed", "hour", r.Hour.Format("2006-01-02 15h"), "error", r.Err)
		} else if len(r.Ticks) > 0 {
			all = append(all, r.Ticks...)
		}
		if progress != nil {
			select {
			case progress <- ProgressUpdate{Symbol: symbol, Hour: r.Hour, Done: d, Total: total, Ticks: len(r.Ticks)}:
			default:
				logger.Warn("progress channel full, skip update", "hour", r.Hour.Format("2006-01-02 15h"))
			}
		}
	}
	return all
}
