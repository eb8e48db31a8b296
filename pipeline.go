package samplestats

import (
	"context"
	"slices"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/samplestats/pkg/stats"
)

// Pipeline is the statistics pipeline: generate a sample, then derive the variation
// series, the distribution, the cumulative and the relative frequency from it.
// A Pipeline holds configuration only; every Compute call builds its own generator
// and data, so a single Pipeline can serve concurrent requests.
type Pipeline struct {
	sampleSize   int
	values       []int
	newGenerator func() stats.Generator
	now          func() time.Time
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithGeneratorFactory sets the constructor of the per-run generator.
// The factory must return a new Generator on each call.
func WithGeneratorFactory(fn func() stats.Generator) PipelineOption {
	return func(p *Pipeline) {
		p.newGenerator = fn
	}
}

// WithClock sets the clock used to stamp reports.
func WithClock(fn func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		p.now = fn
	}
}

// NewPipeline validates cfg and builds a Pipeline from it.
func NewPipeline(cfg *Config, opts ...PipelineOption) (*Pipeline, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid pipeline config")
	}

	p := &Pipeline{
		sampleSize:   cfg.SampleSize,
		values:       slices.Clone(cfg.Values),
		newGenerator: func() stats.Generator { return stats.NewRandGenerator() },
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Compute implements Service.
func (p *Pipeline) Compute(ctx context.Context) (*Report, error) {
	err := ctx.Err()
	if err != nil {
		return nil, ewrap.Wrap(err, "compute canceled")
	}

	sample, err := stats.GenerateSample(p.newGenerator(), p.sampleSize, p.values)
	if err != nil {
		return nil, ewrap.Wrap(err, "generate sample")
	}

	series := stats.VariationSeries(sample)
	dist := stats.Distribution(sample)

	rel, err := stats.RelativeFrequency(dist, len(sample))
	if err != nil {
		return nil, ewrap.Wrap(err, "relative frequency")
	}

	return &Report{
		Sample:          sample,
		VariationSeries: series,
		Distribution:    dist,
		Cumulative:      stats.CumulativeFrequency(dist),
		Relative:        rel,
		Summary:         stats.Summarize(series),
		Fingerprint:     stats.Fingerprint(sample),
		GeneratedAt:     p.now(),
	}, nil
}
