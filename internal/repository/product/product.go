package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freightdesk/internal/entities"
	"freightdesk/internal/repository"
	"freightdesk/internal/service/product"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returning = "RETURNING id, name, description, category, weight, dimensions, fragile, status, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*ProductDB, error) {
	var p ProductDB
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Weight,
		&p.Dimensions,
		&p.Fragile,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, productModifyEntity entities.ProductModify) (int64, error) {
	productModifyModel := FromDomainModify(&productModifyEntity)
	query := `INSERT INTO products (name, description, category, weight, dimensions, fragile, status)
		VALUES ($1, COALESCE($2, ''), $3, $4, COALESCE($5, ''), $6, $7)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		productModifyModel.Name,
		productModifyModel.Description,
		productModifyModel.Category,
		productModifyModel.Weight,
		productModifyModel.Dimensions,
		productModifyModel.Fragile,
		productModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, productModifyEntity entities.ProductModify) (*entities.Product, error) {
	productModifyModel := FromDomainModify(&productModifyEntity)

	builder := qb.
		Update("products")

	// partial update, nil fields keep their value
	if productModifyModel.Name != nil {
		builder = builder.Set("name", productModifyModel.Name)
	}
	if productModifyModel.Description != nil {
		builder = builder.Set("description", productModifyModel.Description)
	}
	if productModifyModel.Category != nil {
		builder = builder.Set("category", productModifyModel.Category)
	}
	if productModifyModel.Weight != nil {
		builder = builder.Set("weight", productModifyModel.Weight)
	}
	if productModifyModel.Dimensions != nil {
		builder = builder.Set("dimensions", productModifyModel.Dimensions)
	}
	if productModifyModel.Fragile != nil {
		builder = builder.Set("fragile", productModifyModel.Fragile)
	}
	if productModifyModel.Status != nil {
		builder = builder.Set("status", productModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": productModifyModel.ID}).
		Suffix(returning)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	productModel, err := scanProduct(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}

		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	return ToDomain(productModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected product repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Product, error) {
	query := `
	SELECT id, name, description, category, weight, dimensions, fragile, status, created_at
	FROM products
	ORDER BY created_at DESC, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 8)
	for rows.Next() {
		productModel, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
		}
		productModels = append(productModels, *productModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	return ToDomainList(productModels), nil
}

// mapWriteError turns constraint violations into the service errors the handlers know.
func mapWriteError(err error) error {
	switch {
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return product.ErrConflict
	case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
		switch repository.ConstraintName(err) {
		case "products_weight_check":
			return product.ErrInvalidWeight
		case "products_status_check":
			return product.ErrInvalidStatus
		}
		return product.ErrMissingRequiredFields
	}
	return nil
}
