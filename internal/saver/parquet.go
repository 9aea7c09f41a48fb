package saver

import (
	"github.com/parquet-go/parquet-go"

	"fx-data/internal/model"
)

// ParquetTickSaver writes the raw tick table as Parquet. Ticks are bulky, so
// the archive format is columnar by default.
type ParquetTickSaver struct{}

func (ParquetTickSaver) Extension() string { return "parquet" }

func (ParquetTickSaver) Save(ticks []model.Tick, path string) error {
	return parquet.WriteFile(path, ticks)
}
