package samplestats

import (
	"context"
)

// Service is the service interface of the statistics pipeline.
// It enables middleware to be added to the service.
type Service interface {
	// Compute generates a fresh sample and derives every artifact from it.
	// A failed run returns no partial report.
	Compute(ctx context.Context) (*Report, error)
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
