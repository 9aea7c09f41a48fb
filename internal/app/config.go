package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fx-data/internal/crawl"
	"fx-data/internal/resample"
	"fx-data/internal/saver"
)

// Config holds run configuration. Formats, workers and the log level come from
// the environment (deploy-time knobs); symbol, dates and output come from flags.
type Config struct {
	Symbol    string
	Start     time.Time // inclusive, UTC midnight
	End       time.Time // inclusive, UTC midnight of the last day
	Output    string    // bar table path
	Interval  string    // e.g. 1min, 5min, 1h
	Workers   int
	SaveTicks bool

	BarFormat  string // csv | json
	TickFormat string // parquet | csv
	LogLevel   string // debug | info | warn | error
	DataDir    string
}

// LoadConfig reads environment-backed defaults. Flag values are applied on top
// by the CLI.
func LoadConfig() *Config {
	cfg := &Config{
		Symbol:     "EURUSD",
		Interval:   getEnv("INTERVAL", "1min"),
		Workers:    crawl.DefaultWorkers,
		BarFormat:  getEnv("BAR_FORMAT", "csv"),
		TickFormat: getEnv("TICK_FORMAT", "parquet"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DataDir:    getEnv("DATA_DIR", "data"),
	}
	if w := os.Getenv("WORKERS"); w != "" {
		if v, err := strconv.Atoi(w); err == nil && v > 0 {
			cfg.Workers = v
		}
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Validate fails fast on configuration errors, before any network activity.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.Start.IsZero() || c.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("end date %s before start date %s",
			c.End.Format("2006-01-02"), c.Start.Format("2006-01-02"))
	}
	if _, err := resample.ParseInterval(c.Interval); err != nil {
		return err
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if saver.NewBarSaver(c.BarFormat) == nil {
		return fmt.Errorf("unsupported bar format %q (use: csv, json)", c.BarFormat)
	}
	if c.SaveTicks && saver.NewTickSaver(c.TickFormat) == nil {
		return fmt.Errorf("unsupported tick format %q (use: parquet, csv)", c.TickFormat)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// ProgressPath returns the path of the last-completed-day record used for bulk
// resume.
func (c *Config) ProgressPath() string {
	return filepath.Join(c.DataDir, ".lastday.json")
}

// TicksPath derives the raw-tick output path from the bar output path, so
// data/EURUSD.csv yields data/EURUSD.ticks.parquet.
func (c *Config) TicksPath() string {
	ext := filepath.Ext(c.Output)
	base := strings.TrimSuffix(c.Output, ext)
	ts := saver.NewTickSaver(c.TickFormat)
	if ts == nil {
		return base + ".ticks"
	}
	return base + ".ticks." + ts.Extension()
}
