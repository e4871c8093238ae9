package grpcclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"freightdesk/internal/pkg/config"
	"freightdesk/pkg/logger"
	"freightdesk/pkg/retrier/backoff_adapter"
)

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

// NewConnClient dials the order service and waits until it reports SERVING.
func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.OrderService) (*grpc.ClientConn, error) {
	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
		grpc.WithChainUnaryInterceptor(LoggingInterceptor(grpcLog)),
	)
	if err != nil {
		return nil, fmt.Errorf("create grpc client for %s: %w", cfg.GRPCHost, err)
	}

	health := healthpb.NewHealthClient(conn)
	err = backoff_adapter.WaitReady(ctx, grpcLog, backoff_adapter.StartupConfig, "order-service",
		func(ctx context.Context) error {
			return CheckServing(ctx, health)
		})
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			grpcLog.Warn("failed to close grpc connection", logger.NewField("error", closeErr))
		}
		return nil, err
	}

	return conn, nil
}

// CheckServing asks the standard health endpoint about the orders service.
func CheckServing(ctx context.Context, health healthpb.HealthClient) error {
	resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{Service: OrdersServiceName})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("order service is %s", resp.GetStatus())
	}
	return nil
}

// LoggingInterceptor logs failed unary calls with their status code and duration.
func LoggingInterceptor(log logger.Logger) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			log.Warn("grpc call failed",
				logger.NewField("method", method),
				logger.NewField("code", status.Code(err).String()),
				logger.NewField("duration", time.Since(start)),
				logger.NewField("error", err),
			)
		}
		return err
	}
}
