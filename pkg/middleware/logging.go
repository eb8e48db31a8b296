// Package middleware provides various middleware implementations for the samplestats service.
// This package includes logging middleware that wraps the samplestats service to provide
// execution time logging and run tracing for debugging and monitoring purposes.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/samplestats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with Uber's Zap SugaredLogger, but should work with any other logger that matches the interface.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the samplestats.Service interface.
type LoggingMiddleware struct {
	next   samplestats.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next samplestats.Service, logger Logger) samplestats.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Compute logs the outcome of the run and the time it took.
func (mw LoggingMiddleware) Compute(ctx context.Context) (*samplestats.Report, error) {
	begin := time.Now()

	report, err := mw.next.Compute(ctx)
	if err != nil {
		mw.logger.Errorf("method Compute failed after %s: %v", time.Since(begin), err)

		return nil, err
	}

	mw.logger.Infof("method Compute took: %s sample: %s size: %d distinct: %d",
		time.Since(begin), report.Fingerprint, len(report.Sample), report.Distribution.Len())

	return report, nil
}
