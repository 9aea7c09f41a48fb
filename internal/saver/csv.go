package saver

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"fx-data/internal/model"
)

const timestampLayout = "2006-01-02 15:04:05"

// CSVBarSaver writes the bar table as CSV with the columns downstream charting
// consumes: timestamp,open,high,low,close,bid,ask,spread,volume.
type CSVBarSaver struct{}

func (CSVBarSaver) Extension() string { return "csv" }

func (CSVBarSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"timestamp", "open", "high", "low", "close", "bid", "ask", "spread", "volume"}); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write([]string{
			time.UnixMilli(b.TimestampMS).UTC().Format(timestampLayout),
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			floatStr(b.Bid),
			floatStr(b.Ask),
			floatStr(b.Spread),
			floatStr(b.Volume),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

// CSVTickSaver writes the raw tick table as CSV.
type CSVTickSaver struct{}

func (CSVTickSaver) Extension() string { return "csv" }

func (CSVTickSaver) Save(ticks []model.Tick, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"timestamp_ms", "bid", "ask", "bid_volume", "ask_volume"}); err != nil {
		return err
	}
	for _, t := range ticks {
		if err := w.Write([]string{
			strconv.FormatInt(t.TimestampMS, 10),
			floatStr(t.Bid),
			floatStr(t.Ask),
			floatStr(float64(t.BidVolume)),
			floatStr(float64(t.AskVolume)),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
