package product

import (
	"context"
	"fmt"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/query"
)

type Product struct {
	repository Repository
}

func New(repository Repository) *Product {
	return &Product{
		repository: repository,
	}
}

func (s *Product) CreateProduct(ctx context.Context, productModify entities.ProductModify) (int64, error) {
	if productModify.Name == nil ||
		productModify.Category == nil ||
		productModify.Weight == nil {
		return 0, ErrMissingRequiredFields
	}

	if productModify.Status == nil {
		status := entities.DefaultProductStatus
		productModify.Status = &status
	}
	if productModify.Fragile == nil {
		fragile := false
		productModify.Fragile = &fragile
	}

	if err := validate(productModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, productModify)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

func (s *Product) UpdateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if productModify.ID == nil || *productModify.ID <= 0 {
		return nil, ErrInvalidProductID
	}

	if productModify.Name == nil &&
		productModify.Description == nil &&
		productModify.Category == nil &&
		productModify.Weight == nil &&
		productModify.Dimensions == nil &&
		productModify.Fragile == nil &&
		productModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(productModify); err != nil {
		return nil, err
	}

	product, err := s.repository.Update(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *Product) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidProductID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *Product) ListProducts(ctx context.Context, q entities.Query) ([]entities.Product, error) {
	products, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return query.Apply(products, q), nil
}

func (s *Product) Categories() []entities.Category {
	categories := make([]entities.Category, len(entities.Categories))
	copy(categories, entities.Categories)
	return categories
}
