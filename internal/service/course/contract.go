//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=course_test
package course

import (
	"context"
	"time"

	"freightdesk/internal/entities"
)

type Repository interface {
	GetAvailable(ctx context.Context) ([]entities.Course, error)
	GetByIDForUpdate(ctx context.Context, courseID string) (*entities.Course, error)
	MarkAccepted(ctx context.Context, courseID, carrier string, acceptedAt time.Time) error
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
}

type EventPublisher interface {
	PublishDeliveryStatusChanged(ctx context.Context, change entities.DeliveryStatusChange) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
