package resample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-data/internal/model"
)

func tick(ts time.Time, bid, ask float64, vol float32) model.Tick {
	return model.Tick{TimestampMS: ts.UnixMilli(), Bid: bid, Ask: ask, BidVolume: vol, AskVolume: vol}
}

func TestResampleEmptyInput(t *testing.T) {
	assert.Nil(t, Resample(nil, time.Minute))
	assert.Nil(t, Resample([]model.Tick{}, time.Minute))
}

func TestResampleSingleInterval(t *testing.T) {
	base := time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC)
	ticks := []model.Tick{
		tick(base.Add(5*time.Second), 1.1000, 1.1002, 1),  // mid 1.1001
		tick(base.Add(20*time.Second), 1.1004, 1.1006, 2), // mid 1.1005
		tick(base.Add(40*time.Second), 1.0996, 1.0998, 1), // mid 1.0997
	}
	bars := Resample(ticks, time.Minute)
	require.Len(t, bars, 2) // populated minute + ceiling boundary bar

	b := bars[0]
	assert.Equal(t, base.UnixMilli(), b.TimestampMS)
	assert.InDelta(t, 1.1001, b.Open, 1e-9)
	assert.InDelta(t, 1.1005, b.High, 1e-9)
	assert.InDelta(t, 1.0997, b.Low, 1e-9)
	assert.InDelta(t, 1.0997, b.Close, 1e-9)
	assert.InDelta(t, 1.0996, b.Bid, 1e-9)
	assert.InDelta(t, 1.0998, b.Ask, 1e-9)
	assert.InDelta(t, 0.0002, b.Spread, 1e-9)
	assert.InDelta(t, 8, b.Volume, 1e-9) // (1+1)+(2+2)+(1+1)

	// The ceiling bar is an empty interval: flat at the prior close, zero volume.
	c := bars[1]
	assert.InDelta(t, 1.0997, c.Open, 1e-9)
	assert.InDelta(t, 1.0997, c.High, 1e-9)
	assert.InDelta(t, 1.0997, c.Low, 1e-9)
	assert.InDelta(t, 1.0997, c.Close, 1e-9)
	assert.Zero(t, c.Volume)
}

func TestResampleContiguityAcrossGap(t *testing.T) {
	base := time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC)
	ticks := []model.Tick{
		tick(base.Add(10*time.Second), 1.1000, 1.1002, 1),
		// 7-minute silence
		tick(base.Add(7*time.Minute+30*time.Second), 1.1010, 1.1012, 1),
	}
	bars := Resample(ticks, time.Minute)
	require.Len(t, bars, 9) // minutes 0..8 inclusive of ceiling

	for i := 1; i < len(bars); i++ {
		assert.Equal(t, bars[i-1].TimestampMS+time.Minute.Milliseconds(), bars[i].TimestampMS,
			"missing interval at index %d", i)
	}
	// Gap bars are flat at the prior close with forward-filled bid/ask/spread.
	for i := 1; i <= 6; i++ {
		b := bars[i]
		assert.InDelta(t, 1.1001, b.Open, 1e-9)
		assert.InDelta(t, 1.1001, b.High, 1e-9)
		assert.InDelta(t, 1.1001, b.Low, 1e-9)
		assert.InDelta(t, 1.1001, b.Close, 1e-9)
		assert.InDelta(t, 1.1000, b.Bid, 1e-9)
		assert.InDelta(t, 1.1002, b.Ask, 1e-9)
		assert.InDelta(t, 0.0002, b.Spread, 1e-9)
		assert.Zero(t, b.Volume)
	}
	assert.InDelta(t, 1.1011, bars[7].Close, 1e-9)
}

// Two consecutive hour buckets, the second empty: one populated hourly bar plus a
// flat forward-filled one.
func TestResampleHourlyForwardFill(t *testing.T) {
	h0 := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	ticks := []model.Tick{tick(h0.Add(15*time.Minute), 1.1000, 1.1002, 1)}
	bars := Resample(ticks, time.Hour)
	require.Len(t, bars, 2)

	assert.Equal(t, h0.UnixMilli(), bars[0].TimestampMS)
	assert.InDelta(t, 1.1001, bars[0].Open, 1e-9)
	assert.InDelta(t, 1.1001, bars[0].Close, 1e-9)

	b := bars[1]
	assert.Equal(t, h0.Add(time.Hour).UnixMilli(), b.TimestampMS)
	assert.InDelta(t, 1.1001, b.Open, 1e-9)
	assert.InDelta(t, 1.1001, b.High, 1e-9)
	assert.InDelta(t, 1.1001, b.Low, 1e-9)
	assert.InDelta(t, 1.1001, b.Close, 1e-9)
	assert.Zero(t, b.Volume)
}

func TestResampleEpochAlignedGrid(t *testing.T) {
	// A tick mid-minute still produces a bar anchored to the minute boundary,
	// not to the tick.
	ts := time.Date(2022, 1, 3, 10, 0, 37, 0, time.UTC)
	bars := Resample([]model.Tick{tick(ts, 1.2, 1.2002, 1)}, time.Minute)
	require.NotEmpty(t, bars)
	assert.Equal(t, time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC).UnixMilli(), bars[0].TimestampMS)
}

func TestResampleUnsortedInput(t *testing.T) {
	base := time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC)
	ticks := []model.Tick{
		tick(base.Add(40*time.Second), 1.1004, 1.1006, 1),
		tick(base.Add(5*time.Second), 1.1000, 1.1002, 1),
	}
	bars := Resample(ticks, time.Minute)
	require.NotEmpty(t, bars)
	assert.InDelta(t, 1.1001, bars[0].Open, 1e-9, "open must come from the earliest tick")
	assert.InDelta(t, 1.1005, bars[0].Close, 1e-9)
}

func TestResampleIdempotent(t *testing.T) {
	base := time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC)
	var ticks []model.Tick
	for i := 0; i < 500; i++ {
		ticks = append(ticks, tick(base.Add(time.Duration(i*7)*time.Second), 1.1+float64(i%13)*1e-4, 1.1002+float64(i%13)*1e-4, 1))
	}
	a := Resample(ticks, time.Minute)
	b := Resample(ticks, time.Minute)
	assert.Equal(t, a, b)
}

func TestSortedIsStable(t *testing.T) {
	base := time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC)
	ticks := []model.Tick{
		{TimestampMS: base.UnixMilli(), Bid: 1, Ask: 2, BidVolume: 1},
		{TimestampMS: base.UnixMilli(), Bid: 3, Ask: 4, BidVolume: 2},
	}
	sorted := Sorted(ticks)
	require.Len(t, sorted, 2)
	// Equal timestamps keep arrival order.
	assert.Equal(t, float32(1), sorted[0].BidVolume)
	assert.Equal(t, float32(2), sorted[1].BidVolume)
	// Input is not mutated.
	assert.Equal(t, float32(1), ticks[0].BidVolume)
}

func TestSummarize(t *testing.T) {
	base := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	ticks := []model.Tick{
		tick(base.Add(time.Second), 1.1000, 1.1002, 1),
		tick(base.Add(2*time.Second), 1.1001, 1.1005, 1),
	}
	bars := Resample(ticks, time.Hour)
	sum := Summarize(len(ticks), bars)

	assert.Equal(t, 2, sum.Ticks)
	assert.Equal(t, len(bars), sum.Bars)
	assert.Equal(t, bars[0].TimestampMS, sum.FirstMS)
	assert.Equal(t, bars[len(bars)-1].TimestampMS, sum.LastMS)
	assert.InDelta(t, 0.0003, sum.MaxSpread, 1e-9)
	assert.Equal(t, 1, sum.FlatBars) // the forward-filled ceiling bar
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(0, nil))
}

func BenchmarkResample(b *testing.B) {
	base := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	ticks := make([]model.Tick, 0, 100_000)
	for i := 0; i < 100_000; i++ {
		ticks = append(ticks, tick(base.Add(time.Duration(i)*250*time.Millisecond), 1.1, 1.1002, 1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Resample(ticks, time.Minute)
	}
}
