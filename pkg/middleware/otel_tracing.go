package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/samplestats"
	"github.com/hyp3rd/samplestats/internal/telemetry/attrs"
)

// OTelTracingMiddleware wraps samplestats.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   samplestats.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next samplestats.Service, tracer trace.Tracer, opts ...OTelTracingOption) samplestats.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Compute implements Service.Compute with tracing.
func (mw OTelTracingMiddleware) Compute(ctx context.Context) (*samplestats.Report, error) {
	ctx, span := mw.startSpan(ctx, "samplestats.Compute", attribute.String(attrs.AttrMethod, "Compute"))
	defer span.End()

	report, err := mw.next.Compute(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(
		attribute.Int(attrs.AttrSampleSize, len(report.Sample)),
		attribute.Int(attrs.AttrDistinctValues, report.Distribution.Len()),
		attribute.String(attrs.AttrFingerprint, report.Fingerprint),
	)

	return report, nil
}

// startSpan starts a span with common and provided attributes.
func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}
