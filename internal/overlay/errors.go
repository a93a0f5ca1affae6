package overlay

import "errors"

// Validation failures on the engine boundary. None are retryable; the
// caller gets the error instead of a silently substituted default.
var (
	ErrInvalidAnchor            = errors.New("invalid anchor")
	ErrUnsupportedPollutantKind = errors.New("unsupported pollutant kind")
	ErrInvalidReading           = errors.New("invalid reading")
)
