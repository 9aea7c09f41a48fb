package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/subcommands"

	"fx-data/internal/app"
	"fx-data/internal/slogx"
)

const dayFormat = "2006-01-02"

// downloadCmd downloads one symbol/date range and converts it to bars.
type downloadCmd struct {
	symbol    string
	start     string
	end       string
	output    string
	interval  string
	workers   int
	saveTicks bool
}

func (*downloadCmd) Name() string { return "download" }
func (*downloadCmd) Synopsis() string {
	return "download tick data for a symbol and date range, convert to OHLCV bars"
}
func (*downloadCmd) Usage() string {
	return `download -symbol EURUSD -start 2022-01-01 -end 2023-12-31 -output data/EURUSD.csv:
  Fetch hour-bucketed tick archives, aggregate to bars and write the bar table.
`
}

func (c *downloadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "EURUSD", "instrument code")
	f.StringVar(&c.start, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&c.end, "end", "", "end date (YYYY-MM-DD), inclusive")
	f.StringVar(&c.output, "output", "", "bar table output path")
	f.StringVar(&c.interval, "interval", "1min", "bar interval (1min, 5min, 1h, ...)")
	f.IntVar(&c.workers, "workers", 0, "parallel bucket fetches (0 = default)")
	f.BoolVar(&c.saveTicks, "save-ticks", true, "also persist the raw tick table")
}

func (c *downloadCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Fetcher.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))

	if err := c.apply(cfg); err != nil {
		slog.Error("invalid arguments", "error", err)
		return subcommands.ExitUsageError
	}

	res, err := app.Run(ctx, cfg, a.Fetcher, a.Bars, a.Ticks)
	if err != nil {
		slog.Error("run failed", "error", err)
		return subcommands.ExitFailure
	}
	slog.Info("download complete", "ticks", res.Ticks, "bars", res.Bars)
	return subcommands.ExitSuccess
}

// apply copies flag values into cfg and parses the date range.
func (c *downloadCmd) apply(cfg *app.Config) error {
	cfg.Symbol = c.symbol
	cfg.Interval = c.interval
	cfg.SaveTicks = c.saveTicks
	if c.workers > 0 {
		cfg.Workers = c.workers
	}
	if c.output != "" {
		cfg.Output = c.output
	} else {
		cfg.Output = fmt.Sprintf("%s/%s.csv", cfg.DataDir, cfg.Symbol)
	}
	var err error
	if cfg.Start, err = parseDay(c.start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if cfg.End, err = parseDay(c.end); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	return cfg.Validate()
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required (YYYY-MM-DD)")
	}
	d, err := time.ParseInLocation(dayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}
