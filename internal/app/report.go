package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"fx-data/internal/model"
	"fx-data/internal/resample"
)

type runReport struct {
	Symbol     string           `json:"symbol"`
	FinishedAt string           `json:"finished_at"`
	Summary    resample.Summary `json:"summary"`
	EMA50      float64          `json:"ema50_last"`  // trend snapshot over close
	EMA200     float64          `json:"ema200_last"` // trend snapshot over close
}

// writeRunReport persists the quality summary of the last successful run next to
// the output data, including the final EMA50/EMA200 values downstream charting
// derives from the close column.
func writeRunReport(dataDir, symbol string, sum resample.Summary, bars []model.Bar) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	r := runReport{
		Symbol:     symbol,
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:    sum,
	}
	closes := resample.Closes(bars)
	if ema := resample.EMA(closes, 50); len(ema) > 0 {
		r.EMA50 = ema[len(ema)-1]
	}
	if ema := resample.EMA(closes, 200); len(ema) > 0 {
		r.EMA200 = ema[len(ema)-1]
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, ".lastrun.report.json"), data, 0644)
}
