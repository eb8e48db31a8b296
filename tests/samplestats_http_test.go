package tests

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/longbridgeapp/assert"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/samplestats"
	"github.com/hyp3rd/samplestats/pkg/middleware"
	"github.com/hyp3rd/samplestats/pkg/runstats"
	"github.com/hyp3rd/samplestats/pkg/stats"
)

type discardLogger struct{}

func (discardLogger) Infof(string, ...any)  {}
func (discardLogger) Errorf(string, ...any) {}

// TestSamplestatsHTTP_FullStack wires the pipeline behind every middleware, serves it on an
// ephemeral port and checks that each request draws a fresh, self-consistent report.
func TestSamplestatsHTTP_FullStack(t *testing.T) {
	pipeline, err := samplestats.NewPipeline(samplestats.NewConfig(samplestats.WithPort(0)))
	assert.Nil(t, err)

	collector := runstats.NewCollector()

	metered, err := middleware.NewOTelMetricsMiddleware(pipeline, metricnoop.NewMeterProvider().Meter("tests"))
	assert.Nil(t, err)

	svc := samplestats.ApplyMiddleware(metered,
		func(next samplestats.Service) samplestats.Service {
			return middleware.NewOTelTracingMiddleware(next, tracenoop.NewTracerProvider().Tracer("tests"))
		},
		func(next samplestats.Service) samplestats.Service {
			return middleware.NewStatsCollectorMiddleware(next, collector)
		},
		func(next samplestats.Service) samplestats.Service {
			return middleware.NewLoggingMiddleware(next, discardLogger{})
		},
	)

	srv := samplestats.NewHTTPServer("127.0.0.1:0", samplestats.WithHTTPStats(collector))

	ctx := context.Background()
	err = srv.Start(ctx, svc)
	assert.Nil(t, err)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		assert.Nil(t, srv.Shutdown(shutdownCtx))
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	base := "http://" + srv.Address()

	const requests = 5
	for range requests {
		resp, err := client.Get(base + "/api/report")
		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var doc samplestats.ReportDocument

		err = json.NewDecoder(resp.Body).Decode(&doc)
		assert.Nil(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, 14, len(doc.Sample))
		assert.Equal(t, stats.VariationSeries(doc.Sample), doc.VariationSeries)
		assert.Equal(t, stats.Fingerprint(doc.Sample), doc.Fingerprint)

		total, prevValue, relSum := 0, 0, 0.0
		for _, e := range doc.Distribution {
			assert.True(t, e.Value >= 1 && e.Value <= 5)
			assert.True(t, e.Value > prevValue)

			total += e.Frequency
			prevValue = e.Value
		}

		assert.Equal(t, 14, total)
		assert.Equal(t, 14, doc.Cumulative[len(doc.Cumulative)-1].Frequency)

		for _, e := range doc.Relative {
			relSum += e.Frequency
		}

		assert.True(t, math.Abs(relSum-1) < 1e-9)
	}

	resp, err := client.Get(base + "/stats")
	assert.Nil(t, err)

	var counters runstats.Stats

	err = json.NewDecoder(resp.Body).Decode(&counters)
	assert.Nil(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, uint64(requests), counters.Computations)
	assert.Equal(t, uint64(0), counters.Failures)
}
