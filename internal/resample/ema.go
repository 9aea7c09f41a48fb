package resample

import "fx-data/internal/model"

// EMA computes a recursive exponential moving average with smoothing factor
// 2/(span+1), seeded by the first value. Matches ewm(span, adjust=False) from the
// charting side, so downstream plots can be reproduced from the bar table alone.
func EMA(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// Closes extracts the close column from a bar series.
func Closes(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
