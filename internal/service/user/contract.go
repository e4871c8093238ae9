//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"freightdesk/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.User, error)
}
