package order

import (
	"context"
	"errors"
	"fmt"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/query"
)

type Service struct {
	repository    Repository
	orderGateway  OrderGateway
	statusFactory HandlerFactory
}

func New(repository Repository, orderGateway OrderGateway, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		orderGateway:  orderGateway,
		statusFactory: statusFactory,
	}
}

func (s *Service) List(ctx context.Context, q entities.Query) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return query.Apply(orders, q), nil
}

// ProcessOrderStatusChange applies an order.status.changed event. The order
// service is the source of truth, so its current status is applied rather
// than the one carried by the event.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}

	order, err := s.orderGateway.GetOrderByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order from order-service: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// unhandled statuses are skipped
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, *order); err != nil {
		return nil, err
	}

	return order, nil
}
