// Package dukascopy fetches hour-bucketed bi5 tick archives from the Dukascopy
// datafeed, with retry/backoff on transient failures.
package dukascopy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ulikunitz/xz/lzma"

	"fx-data/internal/bi5"
	"fx-data/internal/model"
)

const baseURL = "https://datafeed.dukascopy.com/datafeed"

// BucketURL returns the archive URL for one symbol-hour. The datafeed path uses
// zero-indexed months.
func BucketURL(symbol string, hour time.Time) string {
	hour = hour.UTC()
	return fmt.Sprintf("%s/%s/%04d/%02d/%02d/%02dh_ticks.bi5",
		baseURL, strings.ToUpper(symbol), hour.Year(), int(hour.Month())-1, hour.Day(), hour.Hour())
}

// LogFunc emits a log line. When set, used instead of slog (fan-in logger).
type LogFunc func(msg string)

// Fetcher downloads and decodes hour buckets. Safe for concurrent use.
type Fetcher struct {
	client *http.Client
	Policy RetryPolicy

	LogFunc LogFunc // Optional fan-in logger for retry and give-up diagnostics.

	rndMu sync.Mutex
	rnd   *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

// NewFetcher constructs a Fetcher with a shared HTTP client and default retry policy.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: newHTTPClient(),
		Policy: DefaultRetryPolicy(),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:  sleepCtx,
	}
}

// SetRand replaces the jitter source. Tests inject a seeded source for
// deterministic backoff.
func (f *Fetcher) SetRand(r *rand.Rand) {
	f.rndMu.Lock()
	f.rnd = r
	f.rndMu.Unlock()
}

// SetSleep replaces the backoff sleep. Tests inject a recorder to assert delays
// without waiting.
func (f *Fetcher) SetSleep(fn func(ctx context.Context, d time.Duration) error) {
	f.sleep = fn
}

// SetClient replaces the HTTP client (tests point it at a local server).
func (f *Fetcher) SetClient(c *http.Client) {
	f.client = c
}

// Close closes idle connections.
func (f *Fetcher) Close() error {
	if t, ok := f.client.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	return nil
}

func (f *Fetcher) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if f.LogFunc != nil {
		f.LogFunc(msg)
	} else {
		slog.Info(msg)
	}
}

func (f *Fetcher) jitter() float64 {
	f.rndMu.Lock()
	v := f.rnd.Float64()
	f.rndMu.Unlock()
	return v
}

// FetchHour retrieves one hour bucket and returns its decoded ticks. A missing
// bucket (404) or a corrupt/empty archive yields (nil, nil): weekends and upstream
// gaps are expected. Transient failures are retried per Policy; when attempts are
// exhausted the bucket degrades to (nil, nil) with a logged warning. Only context
// cancellation and request-construction errors return a non-nil error.
func (f *Fetcher) FetchHour(ctx context.Context, symbol string, hour time.Time) ([]model.Tick, error) {
	url := BucketURL(symbol, hour)
	digits := model.Points(symbol)
	bucketStart := hour.UTC().Truncate(time.Hour)

	for attempt := 0; ; attempt++ {
		ticks, out, status, err := f.tryOnce(ctx, url, bucketStart, digits)
		switch out {
		case outcomeOK:
			return ticks, nil
		case outcomeEmpty:
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil && !isTransient(err) {
			return nil, err
		}
		if attempt+1 >= f.Policy.MaxAttempts {
			f.logf("giving up on %s after %d attempts: %v", url, f.Policy.MaxAttempts, err)
			return nil, nil
		}
		d := f.Policy.Delay(attempt, status, f.jitter())
		f.logf("retry %s in %s (attempt %d/%d, status %d): %v", url, d.Round(time.Millisecond), attempt+1, f.Policy.MaxAttempts, status, err)
		if err := f.sleep(ctx, d); err != nil {
			return nil, err
		}
	}
}

// tryOnce performs one GET and classifies the result. status is 0 when the failure
// had no HTTP response.
func (f *Fetcher) tryOnce(ctx context.Context, url string, bucketStart time.Time, digits int) ([]model.Tick, outcome, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, outcomeRetry, 0, fmt.Errorf("build request: %w", errBadRequest{err})
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, outcomeRetry, 0, err
	}
	defer resp.Body.Close()

	if out := classifyStatus(resp.StatusCode); out != outcomeOK {
		if out == outcomeRetry {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
			return nil, outcomeRetry, resp.StatusCode, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
		}
		return nil, out, resp.StatusCode, nil
	}

	compressed, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, outcomeRetry, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	raw, err := decompress(compressed)
	if err != nil {
		// Corrupt or empty archive on a 200: treated as a bucket with no data.
		return nil, outcomeEmpty, resp.StatusCode, nil
	}
	return bi5.Decode(raw, bucketStart, digits), outcomeOK, resp.StatusCode, nil
}

// decompress unpacks the LZMA-compressed archive body.
func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty archive")
	}
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// errBadRequest marks request-construction failures so they are not retried.
type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var bad errBadRequest
	return !errors.As(err, &bad)
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
