// Package bi5 decodes the Dukascopy hour-archive tick format: fixed 20-byte
// big-endian records {ms_offset u32, ask u32, bid u32, ask_vol f32, bid_vol f32},
// repeated until the buffer is exhausted.
package bi5

import (
	"encoding/binary"
	"math"
	"time"

	"fx-data/internal/model"
)

// RecordSize is the fixed width of one encoded tick.
const RecordSize = 20

// Decode parses a decompressed hour archive into ticks. Prices are integer-scaled
// by 10^digits. Timestamps are bucketStart plus the record's millisecond offset.
// A trailing partial record (fewer than RecordSize bytes) is dropped.
func Decode(buf []byte, bucketStart time.Time, digits int) []model.Tick {
	point := math.Pow10(digits)
	base := bucketStart.UTC().UnixMilli()
	ticks := make([]model.Tick, 0, len(buf)/RecordSize)
	for off := 0; off+RecordSize <= len(buf); off += RecordSize {
		rec := buf[off : off+RecordSize]
		msOffset := binary.BigEndian.Uint32(rec[0:4])
		askInt := binary.BigEndian.Uint32(rec[4:8])
		bidInt := binary.BigEndian.Uint32(rec[8:12])
		askVol := math.Float32frombits(binary.BigEndian.Uint32(rec[12:16]))
		bidVol := math.Float32frombits(binary.BigEndian.Uint32(rec[16:20]))
		ticks = append(ticks, model.Tick{
			TimestampMS: base + int64(msOffset),
			Bid:         float64(bidInt) / point,
			Ask:         float64(askInt) / point,
			BidVolume:   bidVol,
			AskVolume:   askVol,
		})
	}
	return ticks
}

// Append encodes one tick onto dst and returns the extended slice.
func Append(dst []byte, t model.Tick, bucketStart time.Time, digits int) []byte {
	point := math.Pow10(digits)
	base := bucketStart.UTC().UnixMilli()
	var rec [RecordSize]byte
	binary.BigEndian.PutUint32(rec[0:4], uint32(t.TimestampMS-base))
	binary.BigEndian.PutUint32(rec[4:8], uint32(math.Round(t.Ask*point)))
	binary.BigEndian.PutUint32(rec[8:12], uint32(math.Round(t.Bid*point)))
	binary.BigEndian.PutUint32(rec[12:16], math.Float32bits(t.AskVolume))
	binary.BigEndian.PutUint32(rec[16:20], math.Float32bits(t.BidVolume))
	return append(dst, rec[:]...)
}

// Encode is the inverse of Decode for well-formed input.
func Encode(ticks []model.Tick, bucketStart time.Time, digits int) []byte {
	buf := make([]byte, 0, len(ticks)*RecordSize)
	for _, t := range ticks {
		buf = Append(buf, t, bucketStart, digits)
	}
	return buf
}
