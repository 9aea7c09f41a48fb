package model

import "time"

// Bar represents one OHLCV interval with bid/ask/spread enrichment.
// Open/High/Low/Close are computed from the mid price (bid+ask)/2.
type Bar struct {
	TimestampMS int64   `json:"t" parquet:"t"` // interval start, Unix milliseconds (UTC)
	Open        float64 `json:"o" parquet:"o"`
	High        float64 `json:"h" parquet:"h"`
	Low         float64 `json:"l" parquet:"l"`
	Close       float64 `json:"c" parquet:"c"`
	Bid         float64 `json:"bid" parquet:"bid"`       // last bid in interval
	Ask         float64 `json:"ask" parquet:"ask"`       // last ask in interval
	Spread      float64 `json:"spread" parquet:"spread"` // mean ask-bid in interval
	Volume      float64 `json:"v" parquet:"v"`           // sum of bid_volume+ask_volume
}

// Time returns the interval start as UTC time.
func (b Bar) Time() time.Time {
	return time.UnixMilli(b.TimestampMS).UTC()
}
