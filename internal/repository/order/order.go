package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "client_name", "client_email", "pickup_address", "delivery_address", "cargo_type",
	"weight", "status", "priority", "carrier", "created_at", "estimated_delivery", "total_cost",
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
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

func scanOrder(row rowScanner) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.ClientName,
		&o.ClientEmail,
		&o.PickupAddress,
		&o.DeliveryAddress,
		&o.CargoType,
		&o.Weight,
		&o.Status,
		&o.Priority,
		&o.Carrier,
		&o.CreatedAt,
		&o.EstimatedDelivery,
		&o.TotalCost,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Order, error) {
	query, args, err := qb.
		Select(columns...).
		From("orders").
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, 16)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

// Upsert stores an order as the order service reports it, replacing any local copy.
func (r *Repository) Upsert(ctx context.Context, o entities.Order) (*entities.Order, error) {
	orderDB := FromDomain(&o)

	query, args, err := qb.
		Insert("orders").
		Columns(columns...).
		Values(
			orderDB.ID,
			orderDB.ClientName,
			orderDB.ClientEmail,
			orderDB.PickupAddress,
			orderDB.DeliveryAddress,
			orderDB.CargoType,
			orderDB.Weight,
			orderDB.Status,
			orderDB.Priority,
			orderDB.Carrier,
			orderDB.CreatedAt,
			orderDB.EstimatedDelivery,
			orderDB.TotalCost,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			client_email = EXCLUDED.client_email,
			pickup_address = EXCLUDED.pickup_address,
			delivery_address = EXCLUDED.delivery_address,
			cargo_type = EXCLUDED.cargo_type,
			weight = EXCLUDED.weight,
			status = EXCLUDED.status,
			priority = EXCLUDED.priority,
			carrier = EXCLUDED.carrier,
			estimated_delivery = EXCLUDED.estimated_delivery,
			total_cost = EXCLUDED.total_cost,
			updated_at = NOW()`).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository upsert error: %w", err)
	}

	saved, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository upsert error: %w", err)
	}

	return ToDomain(saved), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)

	builder := qb.
		Update("orders").
		Set("status", orderModifyDB.Status)

	if orderModifyDB.Carrier != nil {
		builder = builder.Set("carrier", orderModifyDB.Carrier)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyDB.ID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	updated, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(updated), nil
}
