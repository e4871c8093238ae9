//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"freightdesk/internal/entities"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Delivery, error)
	GetByIDForUpdate(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}

type EventPublisher interface {
	PublishDeliveryStatusChanged(ctx context.Context, change entities.DeliveryStatusChange) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
