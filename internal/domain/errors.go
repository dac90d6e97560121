package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to OCPI envelopes via a single mapError function.
var (
	ErrUnknownVersion = errors.New("unknown version")
)
