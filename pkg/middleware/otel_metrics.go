package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/ewrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/samplestats"
	"github.com/hyp3rd/samplestats/internal/telemetry/attrs"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for pipeline runs.
type OTelMetricsMiddleware struct {
	next  samplestats.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
	sizes     metric.Int64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next samplestats.Service, meter metric.Meter) (samplestats.Service, error) {
	calls, err := meter.Int64Counter("samplestats.calls")
	if err != nil {
		return nil, ewrap.Wrap(err, "create counter")
	}

	durations, err := meter.Float64Histogram("samplestats.duration.ms", metric.WithUnit("ms"))
	if err != nil {
		return nil, ewrap.Wrap(err, "create duration histogram")
	}

	sizes, err := meter.Int64Histogram("samplestats.sample.distinct")
	if err != nil {
		return nil, ewrap.Wrap(err, "create distinct histogram")
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations, sizes: sizes}, nil
}

// Compute implements Service.Compute with metrics.
func (mw *OTelMetricsMiddleware) Compute(ctx context.Context) (*samplestats.Report, error) {
	start := time.Now()

	report, err := mw.next.Compute(ctx)
	if err != nil {
		mw.rec(ctx, "Compute", start, attribute.Bool(attrs.AttrFailed, true))

		return nil, err
	}

	mw.rec(ctx, "Compute", start, attribute.Bool(attrs.AttrFailed, false), attribute.Int(attrs.AttrSampleSize, len(report.Sample)))
	mw.sizes.Record(ctx, int64(report.Distribution.Len()))

	return report, nil
}

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String(attrs.AttrMethod, method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000, metric.WithAttributes(base...))
}
