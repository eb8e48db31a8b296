// Package constants defines default configuration values for the samplestats
// system: the sample shape, the HTTP listener and its timeouts, and the names
// of the environment variables recognised by the command.
package constants

import "time"

const (
	// DefaultPort is the TCP port the HTTP server listens on when none is configured.
	DefaultPort = 3000
	// MaxPort is the largest valid TCP port.
	MaxPort = 65535
	// DefaultSampleSize is the number of elements drawn for each report.
	DefaultSampleSize = 14
	// DefaultReadTimeout bounds reading a request.
	DefaultReadTimeout = 5 * time.Second
	// DefaultWriteTimeout bounds writing a response.
	DefaultWriteTimeout = 5 * time.Second
	// DefaultShutdownTimeout bounds the graceful shutdown of the process.
	DefaultShutdownTimeout = 10 * time.Second
	// PortEnv is the environment variable overriding the listening port.
	PortEnv = "SAMPLESTATS_PORT"
	// DefaultSerializer is the serializer used by the report API when no format is requested.
	DefaultSerializer = "json"
)

// DefaultValues returns the candidate value set sampled when none is configured.
// A fresh slice is returned on every call.
func DefaultValues() []int {
	return []int{1, 2, 3, 4, 5}
}
