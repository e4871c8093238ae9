package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"freightdesk/internal/app"
	orderstatushandler "freightdesk/internal/handlers/kafka-consumer/order_status_changed"
	"freightdesk/internal/handlers/rest/healthcheck_head"
	"freightdesk/internal/pkg/config"
	"freightdesk/internal/pkg/dotenv"
	"freightdesk/internal/pkg/grpcclient"
	"freightdesk/internal/pkg/kafka"
	"freightdesk/internal/pkg/postgres"
	"freightdesk/pkg/logger"
	"freightdesk/pkg/logger/zap_adapter"
)

func main() {
	envLoaded, err := dotenv.Load(dotenv.DefaultPath)
	if err != nil {
		stdlog.Fatalf("failed to load env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("component", "worker-order-status-changed"))

	mainLog.Info("starting order status worker", logger.NewField("kafka_topic", cfg.Kafka.Topic))
	if !envLoaded {
		mainLog.Warn("no .env file found, using process environment")
	}

	if err := run(context.Background(), appLogger, cfg); err != nil {
		mainLog.Error("worker failed", logger.NewField("error", err))
	}
}

//nolint:contextcheck // the consumer runs on ongoingCtx so it can finish a claimed message after SIGTERM
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("component", "worker-order-status-changed"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.OrderService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			runLog.Error("failed to close gRPC connection", logger.NewField("error", err))
		}
	}()

	businessApp, err := app.InitializeKafkaWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	handler := orderstatushandler.New(log, businessApp.OrderService, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, handler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	ongoingCtx, stopOngoing := context.WithCancel(context.Background())
	defer stopOngoing()

	opsServer := &http.Server{
		Addr:              ":" + cfg.Kafka.PortHealthcheck,
		Handler:           initOpsRouter(log, &isShuttingDown, map[string]healthcheck_head.Prober{"postgres": pool}),
		BaseContext:       func(net.Listener) context.Context { return ongoingCtx },
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runLog.Info("ops server starting", logger.NewField("port", cfg.Kafka.PortHealthcheck))
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := consumer.Start(ongoingCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("consumer: %w", err)
		}
		runLog.Info("kafka consumer stopped")
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		runLog.Info("shutting down")

		isShuttingDown.Store(true)
		if ctx.Err() != nil {
			time.Sleep(readinessDrainDelay)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			runLog.Warn("ops server shutdown timed out", logger.NewField("error", err))
		}

		stopOngoing()
		if err := consumer.Close(); err != nil {
			runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
		}
		return nil
	})

	err = g.Wait()
	runLog.Info("worker stopped")
	return err
}

// initOpsRouter serves the readiness probe and the consumer metrics.
func initOpsRouter(log logger.Logger, isShuttingDown *atomic.Bool, probes map[string]healthcheck_head.Prober) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, probes))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
