package model

import "time"

// Tick is one bid/ask quote observation at millisecond resolution.
// Shared by decoder, crawl and saver serialization (json, parquet, csv).
type Tick struct {
	TimestampMS int64   `json:"t" parquet:"t"` // Unix timestamp in milliseconds (UTC)
	Bid         float64 `json:"bid" parquet:"bid"`
	Ask         float64 `json:"ask" parquet:"ask"`
	BidVolume   float32 `json:"bid_volume" parquet:"bid_volume"`
	AskVolume   float32 `json:"ask_volume" parquet:"ask_volume"`
}

// Time returns the tick timestamp as UTC time.
func (t Tick) Time() time.Time {
	return time.UnixMilli(t.TimestampMS).UTC()
}
