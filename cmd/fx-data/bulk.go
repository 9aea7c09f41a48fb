package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"fx-data/internal/app"
	"fx-data/internal/slogx"
)

// bulkCmd downloads one year at a time with a pause between years.
type bulkCmd struct {
	symbol    string
	firstYear int
	lastYear  int
	interval  string
	workers   int
	saveTicks bool
}

func (*bulkCmd) Name() string { return "bulk" }
func (*bulkCmd) Synopsis() string {
	return "download a span of years one run per year, pausing between runs"
}
func (*bulkCmd) Usage() string {
	return `bulk -symbol XAUUSD -first-year 2010 -last-year 2015:
  Run one download per calendar year, writing data/{SYMBOL}_{year}.csv, with a
  random pause between years to stay under upstream rate limits. Years already
  recorded in the progress file are skipped.
`
}

func (c *bulkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "XAUUSD", "instrument code")
	f.IntVar(&c.firstYear, "first-year", 2010, "first year to download")
	f.IntVar(&c.lastYear, "last-year", 2015, "last year to download, inclusive")
	f.StringVar(&c.interval, "interval", "1min", "bar interval")
	f.IntVar(&c.workers, "workers", 0, "parallel bucket fetches (0 = default)")
	f.BoolVar(&c.saveTicks, "save-ticks", false, "also persist raw tick tables")
}

func (c *bulkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Fetcher.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))

	cfg.Symbol = c.symbol
	cfg.Interval = c.interval
	cfg.SaveTicks = c.saveTicks
	if c.workers > 0 {
		cfg.Workers = c.workers
	}

	if err := app.RunBulk(ctx, cfg, c.firstYear, c.lastYear, a.Fetcher, a.Bars, a.Ticks, nil); err != nil {
		slog.Error("bulk download failed", "error", err)
		return subcommands.ExitFailure
	}
	slog.Info("all downloads completed")
	return subcommands.ExitSuccess
}
