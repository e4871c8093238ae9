package course

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/course"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "client", "client_email", "client_phone", "pickup_address", "delivery_address",
	"pickup_date", "delivery_date", "cargo_type", "cargo_description", "weight", "dimensions",
	"distance", "estimated_duration", "payment", "urgency", "vehicle_type", "special_requirements",
	"fragile", "dangerous", "available",
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

func scanCourse(row rowScanner) (*CourseDB, error) {
	var c CourseDB
	err := row.Scan(
		&c.ID,
		&c.Client,
		&c.ClientEmail,
		&c.ClientPhone,
		&c.PickupAddress,
		&c.DeliveryAddress,
		&c.PickupDate,
		&c.DeliveryDate,
		&c.CargoType,
		&c.CargoDescription,
		&c.Weight,
		&c.Dimensions,
		&c.Distance,
		&c.EstimatedDuration,
		&c.Payment,
		&c.Urgency,
		&c.VehicleType,
		&c.SpecialRequirements,
		&c.Fragile,
		&c.Dangerous,
		&c.Available,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAvailable returns the job offers no carrier has taken yet.
func (r *Repository) GetAvailable(ctx context.Context) ([]entities.Course, error) {
	query, args, err := qb.
		Select(columns...).
		From("courses").
		Where("available").
		OrderBy("pickup_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected course repository get available error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected course repository get available error: %w", err)
	}
	defer rows.Close()

	coursesDB := make([]CourseDB, 0, 8)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected course repository get available error: %w", err)
		}
		coursesDB = append(coursesDB, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected course repository get available error: %w", err)
	}

	return ToDomainList(coursesDB), nil
}

// GetByIDForUpdate locks the course row until the surrounding transaction ends,
// taken courses included.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Course, error) {
	query, args, err := qb.
		Select(columns...).
		From("courses").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected course repository get error: %w", err)
	}

	c, err := scanCourse(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("unexpected course repository get error: %w", err)
	}

	return ToDomain(c), nil
}

// MarkAccepted withdraws an available course from the offers on behalf of carrier.
func (r *Repository) MarkAccepted(ctx context.Context, id, carrier string, acceptedAt time.Time) error {
	query, args, err := qb.
		Update("courses").
		Set("available", false).
		Set("accepted_by", carrier).
		Set("accepted_at", acceptedAt).
		Where(sq.Eq{"id": id, "available": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected course repository mark accepted error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected course repository mark accepted error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return course.ErrCourseTaken
	}

	return nil
}
