package market

import "errors"

var (
	// ErrUpstreamUnavailable covers every registry outcome that yields no
	// batch: non-success result codes, HTTP errors, timeouts and transport
	// failures. Callers substitute an estimated snapshot.
	ErrUpstreamUnavailable = errors.New("market registry unavailable")

	errMalformedRecord = errors.New("malformed registry record")
)
