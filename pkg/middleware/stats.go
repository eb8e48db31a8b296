package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/samplestats"
)

// Observer records the outcome of a pipeline run. *runstats.Collector satisfies it.
type Observer interface {
	Observe(at time.Time, took time.Duration, err error)
}

// StatsCollectorMiddleware is a middleware that collects run stats. It should share its collector
// with the HTTP server so that GET /stats reflects every request.
type StatsCollectorMiddleware struct {
	next      samplestats.Service
	collector Observer
}

// NewStatsCollectorMiddleware returns a new StatsCollectorMiddleware.
func NewStatsCollectorMiddleware(next samplestats.Service, collector Observer) samplestats.Service {
	return &StatsCollectorMiddleware{next: next, collector: collector}
}

// Compute collects stats for the Compute method.
func (mw StatsCollectorMiddleware) Compute(ctx context.Context) (*samplestats.Report, error) {
	start := time.Now()

	report, err := mw.next.Compute(ctx)
	mw.collector.Observe(start, time.Since(start), err)

	return report, err
}
