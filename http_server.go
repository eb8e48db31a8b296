package samplestats

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/goccy/go-json"
	fiber "github.com/gofiber/fiber/v3"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/samplestats/internal/constants"
	"github.com/hyp3rd/samplestats/internal/libs/serializer"
	"github.com/hyp3rd/samplestats/internal/sentinel"
	"github.com/hyp3rd/samplestats/pkg/runstats"
)

// Logger is the logging surface the HTTP server needs. *zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(template string, args ...any)
	Errorf(template string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// StatsSource exposes run counters on GET /stats.
type StatsSource interface {
	GetStats() runstats.Stats
}

// HTTPOption configures the HTTP server.
type HTTPOption func(*HTTPServer)

// HTTPServer serves the report over HTTP:
//
//	GET /            the HTML report
//	GET /api/report  the report encoded as json, msgpack or cbor (?format=)
//	GET /stats       run counters, when a StatsSource is configured
//	GET /health      liveness
type HTTPServer struct {
	addr         string
	app          *fiber.App
	readTimeout  time.Duration
	writeTimeout time.Duration
	logger       Logger
	stats        StatsSource
	serializers  *serializer.Registry

	mu      sync.Mutex // protects ln, started and mounted
	ln      net.Listener
	started bool
	mounted bool
}

// WithHTTPLogger sets the logger used for request failures.
func WithHTTPLogger(logger Logger) HTTPOption {
	return func(s *HTTPServer) { s.logger = logger }
}

// WithHTTPStats exposes the given counters on GET /stats.
func WithHTTPStats(src StatsSource) HTTPOption {
	return func(s *HTTPServer) { s.stats = src }
}

// WithHTTPReadTimeout sets read timeout.
func WithHTTPReadTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPServer) { s.readTimeout = d }
}

// WithHTTPWriteTimeout sets write timeout.
func WithHTTPWriteTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPServer) { s.writeTimeout = d }
}

// WithSerializerRegistry replaces the registry backing GET /api/report.
func WithSerializerRegistry(registry *serializer.Registry) HTTPOption {
	return func(s *HTTPServer) { s.serializers = registry }
}

// NewHTTPServer builds an HTTP server holder (lazy start) listening on addr.
func NewHTTPServer(addr string, opts ...HTTPOption) *HTTPServer {
	srv := &HTTPServer{
		addr:         addr,
		readTimeout:  constants.DefaultReadTimeout,
		writeTimeout: constants.DefaultWriteTimeout,
		logger:       nopLogger{},
		serializers:  serializer.NewSerializerRegistry(),
	}
	for _, opt := range opts {
		opt(srv)
	}

	srv.app = fiber.New(fiber.Config{
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return srv
}

// Start listens on the configured address, mounts the routes for svc and serves in the background.
// It is idempotent. Routes are mounted once, after the first successful listen.
func (s *HTTPServer) Start(ctx context.Context, svc Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if svc == nil {
		return sentinel.ErrNilService
	}

	lc := net.ListenConfig{}

	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return ewrap.Wrapf(err, "listen on %s", s.addr)
	}

	if !s.mounted {
		s.mountRoutes(svc)
		s.mounted = true
	}

	s.ln = ln

	go func() {
		serveErr := s.app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
		if serveErr != nil {
			s.logger.Errorf("http server stopped: %v", serveErr)
		}
	}()

	s.started = true

	return nil
}

// Address returns the bound address (useful when passing ":0" for ephemeral port). Empty if not started yet.
func (s *HTTPServer) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln == nil {
		return ""
	}

	return s.ln.Addr().String()
}

// Shutdown stops the server, giving up when ctx is done.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	ch := make(chan error, 1)

	go func() {
		ch <- s.app.Shutdown()
	}()

	select {
	case <-ctx.Done():
		return sentinel.ErrHTTPShutdownTimeout
	case err := <-ch:
		s.started = false

		return err
	}
}

func (s *HTTPServer) mountRoutes(svc Service) {
	s.app.Get("/", func(fiberCtx fiber.Ctx) error {
		report, err := svc.Compute(fiberCtx.Context())
		if err != nil {
			return s.fail(fiberCtx, err)
		}

		body, err := RenderHTML(report)
		if err != nil {
			return s.fail(fiberCtx, err)
		}

		fiberCtx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

		return fiberCtx.Status(fiber.StatusOK).Send(body)
	})

	s.app.Get("/api/report", func(fiberCtx fiber.Ctx) error {
		format := fiberCtx.Query("format", constants.DefaultSerializer)

		codec, err := s.serializers.New(format)
		if err != nil {
			return fiberCtx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "unsupported format " + format,
				"formats": s.serializers.Names(),
			})
		}

		report, err := svc.Compute(fiberCtx.Context())
		if err != nil {
			return s.fail(fiberCtx, err)
		}

		body, err := codec.Marshal(report.Document())
		if err != nil {
			return s.fail(fiberCtx, err)
		}

		fiberCtx.Set(fiber.HeaderContentType, codec.ContentType())

		return fiberCtx.Status(fiber.StatusOK).Send(body)
	})

	s.app.Get("/health", func(fiberCtx fiber.Ctx) error { return fiberCtx.SendString("ok") })

	if s.stats != nil {
		s.app.Get("/stats", func(fiberCtx fiber.Ctx) error { return fiberCtx.JSON(s.stats.GetStats()) })
	}
}

// fail logs err and answers 500. The report is all or nothing, so no partial body is sent.
func (s *HTTPServer) fail(fiberCtx fiber.Ctx, err error) error {
	s.logger.Errorf("%s %s: %v", fiberCtx.Method(), fiberCtx.Path(), err)

	return fiberCtx.Status(fiber.StatusInternalServerError).SendString("internal server error")
}
