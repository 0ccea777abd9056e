package weather

import "errors"

var (
	// ErrInvalidRequest means the client supplied missing or non-numeric
	// coordinates.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderUnavailable means the upstream provider could not be
	// reached or answered with a failure status.
	ErrProviderUnavailable = errors.New("weather provider unavailable")

	// ErrProviderTimeout means the outbound provider call exceeded its
	// deadline.
	ErrProviderTimeout = errors.New("weather provider timed out")

	// ErrMalformedData means the provider answered with an unexpected
	// payload shape.
	ErrMalformedData = errors.New("malformed provider data")
)
