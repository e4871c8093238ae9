package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "freightdesk/internal/app"
	"freightdesk/internal/entities"
	"freightdesk/internal/handlers/rest/course_accept_post"
	"freightdesk/internal/handlers/rest/courses_get"
	"freightdesk/internal/handlers/rest/dashboard_get"
	"freightdesk/internal/handlers/rest/deliveries_get"
	"freightdesk/internal/handlers/rest/delivery_status_put"
	"freightdesk/internal/handlers/rest/draft_advance_post"
	"freightdesk/internal/handlers/rest/draft_field_put"
	"freightdesk/internal/handlers/rest/draft_get"
	"freightdesk/internal/handlers/rest/draft_post"
	"freightdesk/internal/handlers/rest/draft_reset_post"
	"freightdesk/internal/handlers/rest/draft_retreat_post"
	"freightdesk/internal/handlers/rest/draft_submit_post"
	"freightdesk/internal/handlers/rest/healthcheck_head"
	"freightdesk/internal/handlers/rest/orders_get"
	"freightdesk/internal/handlers/rest/ping_get"
	"freightdesk/internal/handlers/rest/product_categories_get"
	"freightdesk/internal/handlers/rest/product_delete"
	"freightdesk/internal/handlers/rest/product_post"
	"freightdesk/internal/handlers/rest/product_put"
	"freightdesk/internal/handlers/rest/products_get"
	"freightdesk/internal/handlers/rest/session_delete"
	"freightdesk/internal/handlers/rest/session_post"
	"freightdesk/internal/handlers/rest/users_get"
	"freightdesk/internal/pkg/config"
	"freightdesk/internal/pkg/dotenv"
	"freightdesk/internal/pkg/grpcclient"
	"freightdesk/internal/pkg/kafka"
	metrics_system "freightdesk/internal/pkg/metrics"
	"freightdesk/internal/pkg/middlewares/auth"
	"freightdesk/internal/pkg/middlewares/cors"
	"freightdesk/internal/pkg/middlewares/graceful_shutdown"
	"freightdesk/internal/pkg/middlewares/metrics"
	"freightdesk/internal/pkg/middlewares/rate_limiter"
	"freightdesk/internal/pkg/middlewares/timeout"
	"freightdesk/internal/pkg/postgres"
	"freightdesk/pkg/logger"
	"freightdesk/pkg/logger/zap_adapter"
	"freightdesk/pkg/token_bucket"
)

func main() {
	portFlag := flag.String("port", "", "server port, overrides PORT")
	flag.Parse()

	envLoaded, err := dotenv.Load(dotenv.DefaultPath)
	if err != nil {
		stdlog.Fatalf("failed to load env file: %v", err)
	}
	if *portFlag != "" {
		if err := os.Setenv("PORT", *portFlag); err != nil {
			stdlog.Fatalf("failed to set PORT: %v", err)
		}
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
	mainLog := appLogger.With(logger.NewField("component", "service"))

	mainLog.Info("starting freightdesk service")
	if !envLoaded {
		mainLog.Warn("no .env file found, using process environment")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

const (
	serviceName        = "freightdesk"
	rateLimiterIdleTTL = 10 * time.Minute
	shutdownRetryAfter = 5 * time.Second
)

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

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
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer closeProducer(runLog, producer)

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx backs BaseContext and outlives SIGTERM; it is cancelled only
	// after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: cors.Middleware(cfg.Server.CORSAllowedOrigins)(initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, map[string]healthcheck_head.Prober{"postgres": pool})),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// ctx is already cancelled here
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()
	runLog.Info("server stopped")
	return nil
}

func closeProducer(log logger.Logger, producer sarama.SyncProducer) {
	if err := producer.Close(); err != nil {
		log.Error("failed to close kafka producer", logger.NewField("error", err))
	}
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	probes map[string]healthcheck_head.Prober,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx, shutdownRetryAfter))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log, "/healthcheck", "/metrics"))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewKeyed(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterIdleTTL)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, probes)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, serviceName)).Methods(http.MethodGet)
	router.Handle("/session", session_post.New(log, app.ServiceSession)).Methods(http.MethodPost)

	authed := router.NewRoute().Subrouter()
	authed.Use(auth.Middleware(log, app.ServiceSession))
	authed.Handle("/session", session_delete.New(log, app.ServiceSession)).Methods(http.MethodDelete)
	authed.Handle("/dashboard", dashboard_get.New(log, app.ServiceDashboard)).Methods(http.MethodGet)

	orders := authed.NewRoute().Subrouter()
	orders.Use(auth.RequireRole(entities.RoleAdmin, entities.RoleShipper))
	orders.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)

	admin := authed.NewRoute().Subrouter()
	admin.Use(auth.RequireRole(entities.RoleAdmin))
	admin.Handle("/users", users_get.New(log, app.ServiceUser)).Methods(http.MethodGet)
	admin.Handle("/products", products_get.New(log, app.ServiceProduct)).Methods(http.MethodGet)
	admin.Handle("/products/categories", product_categories_get.New(log, app.ServiceProduct)).Methods(http.MethodGet)
	admin.Handle("/products", product_post.New(log, app.ServiceProduct)).Methods(http.MethodPost)
	admin.Handle("/products/{id:[0-9]+}", product_put.New(log, app.ServiceProduct)).Methods(http.MethodPut)
	admin.Handle("/products/{id:[0-9]+}", product_delete.New(log, app.ServiceProduct)).Methods(http.MethodDelete)

	carrier := authed.NewRoute().Subrouter()
	carrier.Use(auth.RequireRole(entities.RoleCarrier))
	carrier.Handle("/courses", courses_get.New(log, app.ServiceCourse)).Methods(http.MethodGet)
	carrier.Handle("/courses/{id}/accept", course_accept_post.New(log, app.ServiceCourse)).Methods(http.MethodPost)
	carrier.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	carrier.Handle("/deliveries/{id}/status", delivery_status_put.New(log, app.ServiceDelivery)).Methods(http.MethodPut)

	shipper := authed.NewRoute().Subrouter()
	shipper.Use(auth.RequireRole(entities.RoleShipper))
	shipper.Handle("/drafts", draft_post.New(log, app.ServiceIntake)).Methods(http.MethodPost)
	shipper.Handle("/drafts/{id}", draft_get.New(log, app.ServiceIntake)).Methods(http.MethodGet)
	shipper.Handle("/drafts/{id}/fields/{field}", draft_field_put.New(log, app.ServiceIntake)).Methods(http.MethodPut)
	shipper.Handle("/drafts/{id}/advance", draft_advance_post.New(log, app.ServiceIntake)).Methods(http.MethodPost)
	shipper.Handle("/drafts/{id}/retreat", draft_retreat_post.New(log, app.ServiceIntake)).Methods(http.MethodPost)
	shipper.Handle("/drafts/{id}/reset", draft_reset_post.New(log, app.ServiceIntake)).Methods(http.MethodPost)
	shipper.Handle("/drafts/{id}/submit", draft_submit_post.New(log, app.ServiceIntake)).Methods(http.MethodPost)

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
