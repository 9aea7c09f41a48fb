package saver

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-data/internal/model"
)

func sampleBars() []model.Bar {
	return []model.Bar{
		{TimestampMS: 1641168000000, Open: 1.1001, High: 1.1005, Low: 1.0997, Close: 1.0997,
			Bid: 1.0996, Ask: 1.0998, Spread: 0.0002, Volume: 8},
		{TimestampMS: 1641168060000, Open: 1.0997, High: 1.0997, Low: 1.0997, Close: 1.0997,
			Bid: 1.0996, Ask: 1.0998, Spread: 0.0002, Volume: 0},
	}
}

func TestFactories(t *testing.T) {
	assert.NotNil(t, NewBarSaver("csv"))
	assert.NotNil(t, NewBarSaver(" JSON "))
	assert.Nil(t, NewBarSaver("parquet"))
	assert.Nil(t, NewBarSaver(""))

	assert.NotNil(t, NewTickSaver("parquet"))
	assert.NotNil(t, NewTickSaver("csv"))
	assert.Nil(t, NewTickSaver("json"))
}

func TestCSVBarSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, CSVBarSaver{}.Save(sampleBars(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"timestamp", "open", "high", "low", "close", "bid", "ask", "spread", "volume"}, rows[0])
	assert.Equal(t, "2022-01-03 00:00:00", rows[1][0])
	assert.Equal(t, "1.1001", rows[1][1])
	assert.Equal(t, "0", rows[2][8])
}

func TestJSONBarSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.json")
	require.NoError(t, JSONBarSaver{}.Save(sampleBars(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []model.Bar
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleBars(), got)
}

func TestCSVTickSaver(t *testing.T) {
	ticks := []model.Tick{
		{TimestampMS: 1641168000500, Bid: 1.1000, Ask: 1.1002, BidVolume: 0.5, AskVolume: 1},
	}
	path := filepath.Join(t.TempDir(), "ticks.csv")
	require.NoError(t, CSVTickSaver{}.Save(ticks, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1641168000500", rows[1][0])
	assert.Equal(t, "1.1", rows[1][1])
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, "csv", CSVBarSaver{}.Extension())
	assert.Equal(t, "json", JSONBarSaver{}.Extension())
	assert.Equal(t, "parquet", ParquetTickSaver{}.Extension())
	assert.Equal(t, "csv", CSVTickSaver{}.Extension())
}
