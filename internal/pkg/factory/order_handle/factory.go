//go:generate mockgen -source=../../../service/order/contract.go -destination=./repository_mocks_test.go -package=order_handle_test
package order_handle

import (
	"context"
	"fmt"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/order"
)

type StatusHandlerFactory struct {
	repository order.Repository
}

func NewStatusHandlerFactory(repository order.Repository) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		repository: repository,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderPending:
		return f.pendingHandler, nil
	case entities.OrderAssigned, entities.OrderEnRoute, entities.OrderDelivered, entities.OrderCancelled:
		return f.progressHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// pendingHandler makes a newly accepted order visible in the list views.
func (f *StatusHandlerFactory) pendingHandler(ctx context.Context, o entities.Order) error {
	_, err := f.repository.Upsert(ctx, o)
	if err != nil {
		return fmt.Errorf("upsert pending order %s: %w", o.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) progressHandler(ctx context.Context, o entities.Order) error {
	orderModify := entities.OrderModify{
		ID:     &o.ID,
		Status: &o.Status,
	}
	if o.Carrier != "" {
		orderModify.Carrier = &o.Carrier
	}

	_, err := f.repository.UpdateStatus(ctx, orderModify)
	if err != nil {
		return fmt.Errorf("update order %s to %s: %w", o.ID, o.Status, err)
	}
	return nil
}
