package dukascopy

import (
	"net/http"
	"time"
)

// RetryPolicy classifies transient failures into backoff delays, decoupled from the
// HTTP call itself so it is unit-testable without I/O.
type RetryPolicy struct {
	MaxAttempts int           // total attempts including the first
	Penalty     time.Duration // extra delay when the upstream signals rate limiting
}

// DefaultRetryPolicy mirrors the datafeed's tolerated request pattern: up to 10
// attempts, exponential backoff, 10s penalty on rate-limit statuses.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 10,
		Penalty:     10 * time.Second,
	}
}

// Delay returns the backoff before retrying after failed attempt k (0-indexed):
// 2^k seconds plus jitter in [0,1) seconds, plus Penalty when status is 429 or 503.
// status 0 means the failure had no HTTP status (timeout, connection error).
func (p RetryPolicy) Delay(attempt, status int, jitter float64) time.Duration {
	d := time.Duration(1<<uint(attempt))*time.Second + time.Duration(jitter*float64(time.Second))
	if status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable {
		d += p.Penalty
	}
	return d
}

// outcome classifies one fetch attempt.
type outcome int

const (
	outcomeOK    outcome = iota
	outcomeEmpty         // expected absence: 404 bucket or corrupt/empty archive
	outcomeRetry         // transient transport failure: timeout, conn error, 5xx, 429
)

// classifyStatus maps an HTTP status to an attempt outcome. Anything that is not
// success or a not-found bucket is treated as transient, matching the upstream's
// behavior of intermittently serving 5xx/429 for valid buckets.
func classifyStatus(status int) outcome {
	switch status {
	case http.StatusOK:
		return outcomeOK
	case http.StatusNotFound:
		return outcomeEmpty
	default:
		return outcomeRetry
	}
}
