// Package resample converts an irregular tick stream into a contiguous
// fixed-interval bar series with forward-fill gap policy.
package resample

import (
	"sort"
	"time"

	"fx-data/internal/model"
)

// Sorted returns a copy of ticks stably sorted by timestamp ascending. Ticks
// sharing a timestamp keep their arrival order.
func Sorted(ticks []model.Tick) []model.Tick {
	out := make([]model.Tick, len(ticks))
	copy(out, ticks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimestampMS < out[j].TimestampMS
	})
	return out
}

// Resample buckets ticks into epoch-aligned intervals and produces one bar per
// interval from the first tick's interval floor through the last tick's interval
// ceiling, inclusive. Populated intervals aggregate the mid price (OHLC), the
// last bid/ask, the mean spread and the summed volume. Empty intervals carry the
// prior interval's filled close as a flat candle with zero volume, so the series
// has no missing interval regardless of tick density. Pure function of its input.
func Resample(ticks []model.Tick, interval time.Duration) []model.Bar {
	if len(ticks) == 0 || interval <= 0 {
		return nil
	}
	sorted := Sorted(ticks)

	step := interval.Milliseconds()
	first := floorTo(sorted[0].TimestampMS, step)
	last := ceilTo(sorted[len(sorted)-1].TimestampMS, step)

	bars := make([]model.Bar, 0, (last-first)/step+1)
	idx := 0

	// Gap fill is a single forward pass: each empty interval's candle is
	// synthesized from the already-filled close of the interval before it.
	var fillClose, fillBid, fillAsk, fillSpread float64

	for ts := first; ts <= last; ts += step {
		next := ts + step

		var (
			count                   int
			open, high, low, closeP float64
			lastBid, lastAsk        float64
			spreadSum, volSum       float64
		)
		for idx < len(sorted) && sorted[idx].TimestampMS < next {
			t := sorted[idx]
			mid := (t.Bid + t.Ask) / 2
			if count == 0 {
				open, high, low = mid, mid, mid
			}
			if mid > high {
				high = mid
			}
			if mid < low {
				low = mid
			}
			closeP = mid
			lastBid, lastAsk = t.Bid, t.Ask
			spreadSum += t.Ask - t.Bid
			volSum += float64(t.BidVolume) + float64(t.AskVolume)
			count++
			idx++
		}

		b := model.Bar{TimestampMS: ts}
		if count > 0 {
			b.Open, b.High, b.Low, b.Close = open, high, low, closeP
			b.Bid, b.Ask = lastBid, lastAsk
			b.Spread = spreadSum / float64(count)
			b.Volume = volSum
			fillClose, fillBid, fillAsk, fillSpread = b.Close, b.Bid, b.Ask, b.Spread
		} else {
			// The grid starts at the first tick's interval, so a fill source
			// always exists by the time an empty interval is reached.
			b.Open, b.High, b.Low, b.Close = fillClose, fillClose, fillClose, fillClose
			b.Bid, b.Ask, b.Spread = fillBid, fillAsk, fillSpread
		}
		bars = append(bars, b)
	}
	return bars
}

// floorTo rounds ts down to the epoch-aligned multiple of step.
func floorTo(ts, step int64) int64 {
	r := ts % step
	if r < 0 {
		r += step
	}
	return ts - r
}

// ceilTo rounds ts up to the epoch-aligned multiple of step; exact multiples are
// returned unchanged.
func ceilTo(ts, step int64) int64 {
	f := floorTo(ts, step)
	if f == ts {
		return ts
	}
	return f + step
}
