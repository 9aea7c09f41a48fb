// Package saver persists tick and bar tables. High-level code injects the
// implementation; the pipeline depends only on the interfaces.
package saver

import (
	"strings"

	"fx-data/internal/model"
)

// BarSaver writes an ordered bar series to a file.
type BarSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// TickSaver writes an ordered raw tick table to a file.
type TickSaver interface {
	Save(ticks []model.Tick, path string) error
	Extension() string
}

// NewBarSaver creates a BarSaver by format (csv, json). Returns nil if the
// format is not supported.
func NewBarSaver(format string) BarSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVBarSaver{}
	case "json":
		return JSONBarSaver{}
	default:
		return nil
	}
}

// NewTickSaver creates a TickSaver by format (parquet, csv). Returns nil if the
// format is not supported.
func NewTickSaver(format string) TickSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "parquet":
		return ParquetTickSaver{}
	case "csv":
		return CSVTickSaver{}
	default:
		return nil
	}
}
