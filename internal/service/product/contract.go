//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_test
package product

import (
	"context"

	"freightdesk/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, productModify entities.ProductModify) (int64, error)
	GetAll(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	Delete(ctx context.Context, id int64) error
}
