package order

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"freightdesk/internal/entities"
	service "freightdesk/internal/service/order"
	retrierconfig "freightdesk/pkg/retrier"
	"freightdesk/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-service"

	// idempotencyKeyHeader lets the order service drop a repeated acceptance of the same draft.
	idempotencyKeyHeader = "idempotency-key"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type OrderGateway struct {
	client  client
	retrier retrier
	now     func() time.Time
}

func New(client client) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &OrderGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		now:     time.Now,
	}
}

// Accept hands a finished draft to the order service. The draft id travels as
// the idempotency key, so retries of the same submission create one order.
func (o *OrderGateway) Accept(ctx context.Context, draftID string, draft entities.OrderDraft) (*entities.OrderAcceptance, error) {
	req, err := fromDraft(draftID, draft)
	if err != nil {
		return nil, fmt.Errorf("gateway order, accept: %w", err)
	}

	ctx = metadata.AppendToOutgoingContext(ctx, idempotencyKeyHeader, draftID)

	var resp *structpb.Struct

	err = o.executeWithMetrics(ctx, "AcceptOrder", func(ctx context.Context) error {
		var err error
		resp, err = o.client.AcceptOrder(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, accept draft: %s: %w", draftID, err)
	}

	acceptance, err := toAcceptance(resp, o.now())
	if err != nil {
		return nil, fmt.Errorf("gateway order, accept draft: %s: %w", draftID, err)
	}

	return acceptance, nil
}

func (o *OrderGateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	req, err := structpb.NewStruct(map[string]any{keyID: orderID})
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order: %w", err)
	}

	var resp *structpb.Struct

	err = o.executeWithMetrics(ctx, "GetOrderById", func(ctx context.Context) error {
		var err error
		resp, err = o.client.GetOrderById(ctx, req)
		return err
	})
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, service.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, err)
	}

	payload := resp.GetFields()[keyOrder].GetStructValue()
	if payload == nil {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, service.ErrOrderNotFound)
	}

	order, err := toDomain(payload)
	if err != nil {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, err)
	}

	return order, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// executeWithMetrics runs fn under the retrier and records latency and retries per method.
func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Add(float64(attempt - 1))
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
