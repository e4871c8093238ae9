//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"

	"freightdesk/internal/entities"
)

type OrderService interface {
	List(ctx context.Context, q entities.Query) ([]entities.Order, error)
}

type UserService interface {
	List(ctx context.Context, q entities.Query) ([]entities.User, error)
}

type DeliveryService interface {
	List(ctx context.Context, q entities.Query) ([]entities.Delivery, error)
}

type CourseService interface {
	List(ctx context.Context, q entities.Query) ([]entities.Course, error)
}
