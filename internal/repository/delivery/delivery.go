package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freightdesk/internal/entities"
	"freightdesk/internal/repository"
	"freightdesk/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "client", "route", "pickup_address", "delivery_address", "status", "progress",
	"estimated_arrival", "cargo", "weight", "payment", "start_date", "actual_delivery", "carrier",
}

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

func scanDelivery(row rowScanner) (*DeliveryDB, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID,
		&d.Client,
		&d.Route,
		&d.PickupAddress,
		&d.DeliveryAddress,
		&d.Status,
		&d.Progress,
		&d.EstimatedArrival,
		&d.Cargo,
		&d.Weight,
		&d.Payment,
		&d.StartDate,
		&d.ActualDelivery,
		&d.Carrier,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Delivery, error) {
	query, args, err := qb.
		Select(columns...).
		From("deliveries").
		OrderBy("start_date DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveriesDB := make([]DeliveryDB, 0, 16)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveriesDB = append(deliveriesDB, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveriesDB), nil
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Delivery, error) {
	query, args, err := qb.
		Select(columns...).
		From("deliveries").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	d, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(d), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.Update("deliveries")

	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.Progress != nil {
		builder = builder.Set("progress", deliveryModifyDB.Progress)
	}
	if deliveryModifyDB.ActualDelivery != nil {
		builder = builder.Set("actual_delivery", deliveryModifyDB.ActualDelivery)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	d, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(d), nil
}

// Create inserts a new delivery.
func (r *Repository) Create(ctx context.Context, d entities.Delivery) (*entities.Delivery, error) {
	deliveryDB := FromDomain(&d)

	query, args, err := qb.
		Insert("deliveries").
		Columns(columns...).
		Values(
			deliveryDB.ID,
			deliveryDB.Client,
			deliveryDB.Route,
			deliveryDB.PickupAddress,
			deliveryDB.DeliveryAddress,
			deliveryDB.Status,
			deliveryDB.Progress,
			deliveryDB.EstimatedArrival,
			deliveryDB.Cargo,
			deliveryDB.Weight,
			deliveryDB.Payment,
			deliveryDB.StartDate,
			deliveryDB.ActualDelivery,
			deliveryDB.Carrier,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	created, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrDeliveryExists
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(created), nil
}
