package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fx-data/internal/crawl"
	"fx-data/internal/dukascopy"
	"fx-data/internal/resample"
	"fx-data/internal/saver"
)

// ErrNoBars is returned when aggregation produced an empty bar series.
var ErrNoBars = errors.New("tick conversion produced no bars")

// Result reports a completed run.
type Result struct {
	Ticks   int
	Bars    int
	Summary resample.Summary
}

// Run executes one full pipeline: enumerate hour buckets, fetch them in
// parallel, merge, sort, resample, then write the bar table (and optionally the
// raw ticks). Nothing is written on a failed run. The returned error is
// crawl.ErrNoData or ErrNoBars for run-level data failures, a validation error
// for config mistakes, or ctx.Err() on cancellation.
func Run(ctx context.Context, cfg *Config, feed dukascopy.Feed, bars saver.BarSaver, ticks saver.TickSaver) (*Result, error) {
	phase := PhaseConfigured
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	interval, err := resample.ParseInterval(cfg.Interval)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	progress := make(chan crawl.ProgressUpdate, 256)
	var pw sync.WaitGroup
	pw.Add(1)
	go func() {
		defer pw.Done()
		crawl.RunProgressWriter(cfg.ProgressPath(), progress)
	}()

	phase = PhaseFetching
	slog.Info("run", "phase", phase, "symbol", cfg.Symbol,
		"start", cfg.Start.Format("2006-01-02"), "end", cfg.End.Format("2006-01-02"),
		"interval", cfg.Interval, "workers", cfg.Workers)

	merged, err := crawl.Run(ctx, feed, cfg.Symbol, cfg.Start, cfg.End, cfg.Workers, progress, nil)
	close(progress)
	pw.Wait()
	if err != nil {
		slog.Error("run", "phase", PhaseFailed, "reason", err)
		return nil, err
	}

	phase = PhaseMerged
	slog.Info("run", "phase", phase, "ticks", len(merged))

	sorted := resample.Sorted(merged)

	phase = PhaseAggregating
	slog.Info("run", "phase", phase, "interval", interval)
	series := resample.Resample(sorted, interval)
	if len(series) == 0 {
		slog.Error("run", "phase", PhaseFailed, "reason", ErrNoBars)
		return nil, ErrNoBars
	}

	sum := resample.Summarize(len(sorted), series)
	logSummary(sum)

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := bars.Save(series, cfg.Output); err != nil {
		return nil, fmt.Errorf("save bars: %w", err)
	}
	slog.Info("bars saved", "path", cfg.Output, "bars", len(series))

	if cfg.SaveTicks {
		tp := cfg.TicksPath()
		if err := ticks.Save(sorted, tp); err != nil {
			return nil, fmt.Errorf("save ticks: %w", err)
		}
		slog.Info("raw ticks saved", "path", tp, "ticks", len(sorted))
	}

	if err := writeRunReport(cfg.DataDir, cfg.Symbol, sum, series); err != nil {
		slog.Warn("could not write run report", "error", err)
	}

	phase = PhaseDone
	slog.Info("run", "phase", phase, "ticks", len(sorted), "bars", len(series))
	return &Result{Ticks: len(sorted), Bars: len(series), Summary: sum}, nil
}

func logSummary(s resample.Summary) {
	slog.Info("quality summary",
		"ticks", s.Ticks,
		"bars", s.Bars,
		"first", time.UnixMilli(s.FirstMS).UTC().Format("2006-01-02 15:04"),
		"last", time.UnixMilli(s.LastMS).UTC().Format("2006-01-02 15:04"),
		"mean_spread_pips", fmt.Sprintf("%.2f", s.MeanSpread*1e4),
		"max_spread_pips", fmt.Sprintf("%.2f", s.MaxSpread*1e4),
		"flat_bars", s.FlatBars,
		"flat_pct", fmt.Sprintf("%.2f", 100*float64(s.FlatBars)/float64(s.Bars)))
}
