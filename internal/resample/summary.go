package resample

import "fx-data/internal/model"

// flatEps is the range below which a bar counts as flat (no price movement).
const flatEps = 1e-9

// Summary is the per-run quality report over the produced bar series.
type Summary struct {
	Ticks      int     `json:"ticks"`
	Bars       int     `json:"bars"`
	FlatBars   int     `json:"flat_bars"` // bars with |high-low| below flatEps
	MinSpread  float64 `json:"min_spread"`
	MaxSpread  float64 `json:"max_spread"`
	MeanSpread float64 `json:"mean_spread"`
	FirstMS    int64   `json:"first_ms"` // first bar interval start
	LastMS     int64   `json:"last_ms"`  // last bar interval start
}

// Summarize computes quality statistics for a bar series produced from tickCount
// ticks. Empty input yields a zero Summary.
func Summarize(tickCount int, bars []model.Bar) Summary {
	s := Summary{Ticks: tickCount, Bars: len(bars)}
	if len(bars) == 0 {
		return s
	}
	s.FirstMS = bars[0].TimestampMS
	s.LastMS = bars[len(bars)-1].TimestampMS
	s.MinSpread = bars[0].Spread
	s.MaxSpread = bars[0].Spread
	var sum float64
	for _, b := range bars {
		if b.Spread < s.MinSpread {
			s.MinSpread = b.Spread
		}
		if b.Spread > s.MaxSpread {
			s.MaxSpread = b.Spread
		}
		sum += b.Spread
		if diff := b.High - b.Low; diff < flatEps && diff > -flatEps {
			s.FlatBars++
		}
	}
	s.MeanSpread = sum / float64(len(bars))
	return s
}
