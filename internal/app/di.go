package app

import (
	"fmt"

	"fx-data/internal/dukascopy"
	"fx-data/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() *Config {
	return LoadConfig()
}

// ProvideFetcher creates the datafeed fetcher (for Wire).
func ProvideFetcher() *dukascopy.Fetcher {
	return dukascopy.NewFetcher()
}

// ProvideBarSaver creates the BarSaver from config (for Wire). Errors if the
// configured format is not supported.
func ProvideBarSaver(cfg *Config) (saver.BarSaver, error) {
	s := saver.NewBarSaver(cfg.BarFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported BAR_FORMAT %q (use: csv, json)", cfg.BarFormat)
	}
	return s, nil
}

// ProvideTickSaver creates the TickSaver from config (for Wire).
func ProvideTickSaver(cfg *Config) (saver.TickSaver, error) {
	s := saver.NewTickSaver(cfg.TickFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported TICK_FORMAT %q (use: parquet, csv)", cfg.TickFormat)
	}
	return s, nil
}
