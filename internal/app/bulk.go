package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	"fx-data/internal/crawl"
	"fx-data/internal/dukascopy"
	"fx-data/internal/saver"
)

// minPause/maxPause bound the random sleep between yearly runs, keeping the bulk
// loop under the upstream's rate limits.
const (
	minPause = 60 * time.Second
	maxPause = 120 * time.Second
)

// RunBulk downloads one calendar year per run for each year in [firstYear,
// lastYear], writing data/{SYMBOL}_{year}.csv, with a random pause between years.
// Years whose last day is already recorded in the progress file are skipped. A
// failed year is logged and the loop moves on; RunBulk only errors on
// cancellation or when every year failed.
func RunBulk(ctx context.Context, cfg *Config, firstYear, lastYear int, feed dukascopy.Feed, bars saver.BarSaver, ticks saver.TickSaver, rnd *rand.Rand) error {
	if lastYear < firstYear {
		return fmt.Errorf("last year %d before first year %d", lastYear, firstYear)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var completed int
	for year := firstYear; year <= lastYear; year++ {
		yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
		if last, ok := crawl.LastCompleted(cfg.ProgressPath(), cfg.Symbol); ok && !last.Before(yearEnd) {
			slog.Info("year already downloaded, skip", "symbol", cfg.Symbol, "year", year)
			completed++
			continue
		}

		yearCfg := *cfg
		yearCfg.Start = time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		yearCfg.End = yearEnd
		yearCfg.Output = filepath.Join(cfg.DataDir, fmt.Sprintf("%s_%d.csv", yearCfg.Symbol, year))

		slog.Info("starting year download", "symbol", yearCfg.Symbol, "year", year)
		res, err := Run(ctx, &yearCfg, feed, bars, ticks)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("year download failed", "symbol", yearCfg.Symbol, "year", year, "error", err)
		} else {
			completed++
			slog.Info("year download complete", "symbol", yearCfg.Symbol, "year", year,
				"ticks", res.Ticks, "bars", res.Bars)
		}

		if year < lastYear {
			pause := minPause + time.Duration(rnd.Int63n(int64(maxPause-minPause)+1))
			slog.Info("pausing before next year", "pause", pause.Round(time.Second))
			timer := time.NewTimer(pause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	if completed == 0 {
		return fmt.Errorf("all %d years failed", lastYear-firstYear+1)
	}
	return nil
}
