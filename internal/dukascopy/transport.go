package dukascopy

import (
	"net/http"
	"time"
)

// requestTimeout bounds one archive GET end to end.
const requestTimeout = 30 * time.Second

// baseTransportConfig returns the shared HTTP transport configuration used by
// datafeed clients. Archives are small one-shot downloads, so keep-alives stay on
// but the idle pool is kept small.
func baseTransportConfig() *http.Transport {
	return &http.Transport{
		ResponseHeaderTimeout: requestTimeout,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          16,
		MaxIdleConnsPerHost:   16,
	}
}

// newHTTPClient creates an HTTP client configured for datafeed requests.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: baseTransportConfig(),
		Timeout:   requestTimeout,
	}
}
