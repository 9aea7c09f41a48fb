package saver

import (
	"encoding/json"
	"os"

	"fx-data/internal/model"
)

// JSONBarSaver writes the bar table as an indented JSON array.
type JSONBarSaver struct{}

func (JSONBarSaver) Extension() string { return "json" }

func (JSONBarSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(bars)
}
