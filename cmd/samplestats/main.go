// Command samplestats serves a descriptive-statistics report over a freshly
// drawn random sample on every request.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hyp3rd/ewrap"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/hyp3rd/samplestats"
	"github.com/hyp3rd/samplestats/internal/constants"
	"github.com/hyp3rd/samplestats/pkg/middleware"
	"github.com/hyp3rd/samplestats/pkg/runstats"
)

func main() {
	// .env is optional, it only helps local development
	_ = godotenv.Load(".env")

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "create logger:", err)
		os.Exit(1)
	}

	sugar := logger.Sugar()
	defer func() { _ = sugar.Sync() }()

	port, err := resolvePort(os.Getenv(constants.PortEnv), os.Args[1:])
	if err != nil {
		sugar.Errorf("configuration: %v", err)
		os.Exit(2) //nolint:gocritic
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, samplestats.NewConfig(samplestats.WithPort(port)), sugar)
	if err != nil {
		sugar.Errorf("samplestats: %v", err)
		os.Exit(1)
	}
}

// resolvePort picks the listening port: the -port flag wins over the environment,
// which wins over the default.
func resolvePort(env string, args []string) (int, error) {
	port := constants.DefaultPort

	if env != "" {
		p, err := strconv.Atoi(env)
		if err != nil {
			return 0, ewrap.Wrapf(err, "parse %s", constants.PortEnv)
		}

		port = p
	}

	fs := flag.NewFlagSet("samplestats", flag.ContinueOnError)
	fs.IntVar(&port, "port", port, "TCP port to listen on")

	err := fs.Parse(args)
	if err != nil {
		return 0, ewrap.Wrap(err, "parse flags")
	}

	return port, nil
}

// listenURL turns a bound listener address into the URL users reach the report at.
// It keeps the port actually bound, which differs from the configured one when that was 0.
func listenURL(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}

	return "http://localhost:" + port
}

// run wires the pipeline, its middleware and the HTTP server, then blocks until ctx is done.
func run(ctx context.Context, cfg *samplestats.Config, logger *zap.SugaredLogger) error {
	pipeline, err := samplestats.NewPipeline(cfg)
	if err != nil {
		return err
	}

	collector := runstats.NewCollector()

	metered, err := middleware.NewOTelMetricsMiddleware(pipeline, otel.GetMeterProvider().Meter("samplestats"))
	if err != nil {
		return err
	}

	svc := samplestats.ApplyMiddleware(metered,
		func(next samplestats.Service) samplestats.Service {
			return middleware.NewOTelTracingMiddleware(next, otel.Tracer("samplestats"))
		},
		func(next samplestats.Service) samplestats.Service {
			return middleware.NewStatsCollectorMiddleware(next, collector)
		},
		func(next samplestats.Service) samplestats.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
	)

	srv := samplestats.NewHTTPServer(cfg.Addr(),
		samplestats.WithHTTPLogger(logger),
		samplestats.WithHTTPStats(collector),
	)

	err = srv.Start(ctx, svc)
	if err != nil {
		return err
	}

	url := listenURL(srv.Address())

	fmt.Fprintf(os.Stdout, "Server running at %s\n", url)
	logger.Infof("listening on %s", url)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		return ewrap.Wrap(err, "shutdown")
	}

	logger.Infof("server stopped")

	return nil
}
