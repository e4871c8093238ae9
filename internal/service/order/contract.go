//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"freightdesk/internal/entities"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Order, error)
	Upsert(ctx context.Context, order entities.Order) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type (
	ExecuteFn      func(ctx context.Context, order entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
