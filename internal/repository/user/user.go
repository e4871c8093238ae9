package user

import (
	"context"
	"fmt"
	"time"

	"freightdesk/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `
	SELECT id, name, email, role, status, joined_at, last_login, orders_count, rating
	FROM users
	ORDER BY joined_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	usersDB := make([]UserDB, 0, 8)
	for rows.Next() {
		var u UserDB
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Role,
			&u.Status,
			&u.JoinedAt,
			&u.LastLogin,
			&u.OrdersCount,
			&u.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		usersDB = append(usersDB, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(usersDB), nil
}

// RecordLogin stamps last_login for a known account. Logins with an email that has no
// account row are accepted and leave the table untouched.
func (r *Repository) RecordLogin(ctx context.Context, email string, at time.Time) error {
	_, err := r.querier.Exec(ctx, `UPDATE users SET last_login = $2 WHERE email = $1`, email, at)
	if err != nil {
		return fmt.Errorf("unexpected user repository record login error: %w", err)
	}
	return nil
}
