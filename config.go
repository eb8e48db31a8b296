package samplestats

import (
	"slices"
	"strconv"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/samplestats/internal/constants"
	"github.com/hyp3rd/samplestats/internal/sentinel"
)

// Config is the configuration of a samplestats process. It is built once at startup
// and handed to the Pipeline and the HTTPServer.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Zero picks an ephemeral port.
	Port int
	// SampleSize is the number of elements drawn for each report.
	SampleSize int
	// Values is the candidate value set. NewConfig and Validate keep it de-duplicated and ascending.
	Values []int
}

// Option is a function type that can be used to configure the `Config` struct.
type Option func(*Config)

// NewConfig returns a new `Config` struct with default values:
//   - `Port` is set to 3000
//   - `SampleSize` is set to 14
//   - `Values` is set to {1, 2, 3, 4, 5}
//
// Each of the above can be overridden by passing options.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		Port:       constants.DefaultPort,
		SampleSize: constants.DefaultSampleSize,
		Values:     constants.DefaultValues(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	cfg.Values = normalizeValues(cfg.Values)

	return cfg
}

// WithPort sets the listening port.
func WithPort(port int) Option {
	return func(cfg *Config) {
		cfg.Port = port
	}
}

// WithSampleSize sets the number of elements drawn for each report.
func WithSampleSize(n int) Option {
	return func(cfg *Config) {
		cfg.SampleSize = n
	}
}

// WithValues sets the candidate value set. Duplicates are dropped.
func WithValues(values ...int) Option {
	return func(cfg *Config) {
		cfg.Values = slices.Clone(values)
	}
}

// Validate checks the configuration and normalizes the value set.
func (cfg *Config) Validate() error {
	if cfg.Port < 0 || cfg.Port > constants.MaxPort {
		return ewrap.Wrapf(sentinel.ErrInvalidPort, "port %d", cfg.Port)
	}

	if cfg.SampleSize <= 0 {
		return ewrap.Wrapf(sentinel.ErrInvalidSampleSize, "got %d", cfg.SampleSize)
	}

	cfg.Values = normalizeValues(cfg.Values)
	if len(cfg.Values) == 0 {
		return sentinel.ErrEmptyValueSet
	}

	return nil
}

// Addr returns the listen address for the configured port.
func (cfg *Config) Addr() string {
	return ":" + strconv.Itoa(cfg.Port)
}

// URL returns the address users reach the report at.
func (cfg *Config) URL() string {
	return "http://localhost:" + strconv.Itoa(cfg.Port)
}

// normalizeValues turns values into a set: sorted, without duplicates.
func normalizeValues(values []int) []int {
	set := slices.Clone(values)
	slices.Sort(set)

	return slices.Compact(set)
}
