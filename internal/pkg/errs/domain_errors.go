package errs

import "errors"

// Sentinel errors shared by the refresh and read paths
var (
	// Upstream scheduling source errors
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// Cache backend errors
	ErrStoreUnavailable         = errors.New("store unavailable")
	ErrMalformedStoredTimestamp = errors.New("malformed stored timestamp")

	// Refresh policy
	ErrCooldownActive = errors.New("refresh cooldown active")

	// Catalog errors
	ErrInvalidCatalog = errors.New("invalid catalog")
)
