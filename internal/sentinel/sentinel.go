// Package sentinel provides standardized error definitions for the samplestats system.
// This package centralizes all error values used across the samplestats components,
// ensuring consistent error handling and messaging throughout the application.
//
// The errors defined here cover:
// - Invalid arguments handed to the statistics builders (sample size, value set, totals)
// - Invalid configuration parameters (port)
// - Component lookup failures (serializers)
// - Runtime operation errors (shutdown timeouts)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrInvalidArgument is the root of every argument validation failure.
	// Use errors.Is(err, ErrInvalidArgument) to classify an error as a bad input.
	ErrInvalidArgument = ewrap.New("invalid argument")

	// ErrInvalidSampleSize is returned when the requested sample size is not positive.
	ErrInvalidSampleSize = ewrap.Wrap(ErrInvalidArgument, "sample size must be positive")

	// ErrEmptyValueSet is returned when the candidate value set is empty.
	ErrEmptyValueSet = ewrap.Wrap(ErrInvalidArgument, "value set cannot be empty")

	// ErrNilGenerator is returned when no random generator is provided.
	ErrNilGenerator = ewrap.Wrap(ErrInvalidArgument, "generator cannot be nil")

	// ErrZeroTotal is returned when a relative frequency is requested against a zero or negative total.
	ErrZeroTotal = ewrap.Wrap(ErrInvalidArgument, "total must be positive")

	// ErrInvalidPort is returned when the configured TCP port is outside the valid range.
	ErrInvalidPort = ewrap.New("invalid port")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrNilService is returned when the HTTP server is started without a service.
	ErrNilService = ewrap.New("nil service")

	// ErrHTTPShutdownTimeout is returned when the HTTP server fails to shutdown before context deadline.
	ErrHTTPShutdownTimeout = ewrap.New("http shutdown timeout")
)
