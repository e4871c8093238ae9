package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"freightdesk/internal/entities"
	orderservice "freightdesk/internal/service/order"
	"freightdesk/pkg/logger"
)

const topic = "order.status.changed"

// outcome says what happened to one message. Everything except outcomeInterrupted commits the offset.
type outcome string

const (
	outcomeApplied     outcome = "applied"
	outcomeMalformed   outcome = "malformed"
	outcomeRejected    outcome = "rejected"
	outcomeFailed      outcome = "failed"
	outcomeInterrupted outcome = "interrupted"
)

// Handler is the consumer group handler that syncs delivery records with order status changes.
type Handler struct {
	orders  Service
	log     handlerLogger
	timeout time.Duration
}

func New(log handlerLogger, orders Service, timeout time.Duration) *Handler {
	return &Handler{
		orders:  orders,
		log:     log.With(logger.NewField("handler", topic)),
		timeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim returns when the claim closes, the session ends, or a message
// is interrupted. An interrupted message stays unmarked and is redelivered.
func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			result := h.handle(sess.Context(), message)
			MessagesTotal.WithLabelValues(string(result)).Inc()
			if result == outcomeInterrupted {
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Info("session closed", logger.NewField("partition", claim.Partition()))
			return nil
		}
	}
}

func (h *Handler) handle(ctx context.Context, message *sarama.ConsumerMessage) outcome {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || !event.valid() {
		h.log.Error("skipping malformed message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		return outcomeMalformed
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	status := entities.OrderStatusType(event.Status)
	start := time.Now()
	order, err := h.orders.ProcessOrderStatusChange(ctx, entities.OrderModify{
		ID:     &event.OrderID,
		Status: &status,
	})
	ProcessingDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		msgLog.Info("order status applied", logger.NewField("current_status", order.Status.String()))
		return outcomeApplied
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		msgLog.Warn("processing interrupted, message will be redelivered", logger.NewField("error", err))
		return outcomeInterrupted
	case errors.Is(err, orderservice.ErrUndefinedStatus), errors.Is(err, orderservice.ErrOrderNotFound):
		msgLog.Warn("order status change rejected", logger.NewField("error", err))
		return outcomeRejected
	default:
		msgLog.Error("failed to process order status change", logger.NewField("error", err))
		return outcomeFailed
	}
}
