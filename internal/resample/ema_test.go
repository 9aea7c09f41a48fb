package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-data/internal/model"
)

func TestEMASeededByFirstValue(t *testing.T) {
	values := []float64{10, 11, 12, 11, 10}
	out := EMA(values, 3) // alpha = 0.5
	require.Len(t, out, len(values))

	assert.InDelta(t, 10, out[0], 1e-12)
	assert.InDelta(t, 10.5, out[1], 1e-12)    // 0.5*11 + 0.5*10
	assert.InDelta(t, 11.25, out[2], 1e-12)   // 0.5*12 + 0.5*10.5
	assert.InDelta(t, 11.125, out[3], 1e-12)  // 0.5*11 + 0.5*11.25
	assert.InDelta(t, 10.5625, out[4], 1e-12) // 0.5*10 + 0.5*11.125
}

func TestEMAFlatSeriesStaysFlat(t *testing.T) {
	values := []float64{1.1, 1.1, 1.1, 1.1}
	for _, v := range EMA(values, 50) {
		assert.InDelta(t, 1.1, v, 1e-12)
	}
}

func TestEMAEdgeCases(t *testing.T) {
	assert.Nil(t, EMA(nil, 50))
	assert.Nil(t, EMA([]float64{1}, 0))
	assert.Equal(t, []float64{42}, EMA([]float64{42}, 200))
}

func TestCloses(t *testing.T) {
	bars := []model.Bar{{Close: 1.1}, {Close: 1.2}}
	assert.Equal(t, []float64{1.1, 1.2}, Closes(bars))
}
