package models

import "errors"

var (
	// ErrDataUnavailable means a reference dataset or live upstream could
	// not serve the request and no deterministic fallback exists.
	ErrDataUnavailable = errors.New("reference data unavailable")

	// ErrNoMarketData means market ranking produced zero candidates even
	// after the static fallback. Client-actionable, not a crash.
	ErrNoMarketData = errors.New("no market data computable for this crop/location combination")
)
