package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"freightdesk/pkg/logger"
	"freightdesk/pkg/logger/zap_adapter"
)

func main() {
	var (
		baseURL     = flag.String("target", "http://localhost:8080", "freightdesk base URL")
		metricsAddr = flag.String("metrics", ":2112", "address serving /metrics")
		workers     = flag.Int("workers", 4, "concurrent shippers")
		pause       = flag.Duration("pause", 2*time.Second, "average pause between two scenarios")
		logLevel    = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log, err := zap_adapter.NewZapAdapter(*logLevel)
	if err != nil {
		stdlog.Fatalf("init logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, *baseURL, *metricsAddr, *workers, *pause); err != nil {
		log.With(logger.NewField("error", err)).Error("traffic generator stopped")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, baseURL, metricsAddr string, workers int, pause time.Duration) error {
	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	for i := 0; i < workers; i++ {
		shipper := newShipper(baseURL, fmt.Sprintf("shipper-%d@traffic.freightdesk.fr", i))
		workerLog := log.With(logger.NewField("shipper", shipper.email))

		g.Go(func() error {
			for {
				if err := shipper.scenario(ctx); err != nil && ctx.Err() == nil {
					workerLog.With(logger.NewField("error", err)).Warn("scenario failed")
				}

				jitter := time.Duration(rand.Int64N(int64(pause) + 1))
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(pause/2 + jitter):
				}
			}
		})
	}

	log.With(
		logger.NewField("target", baseURL),
		logger.NewField("workers", workers),
	).Info("traffic generator started")

	return g.Wait()
}
