package course

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/delivery"
	"freightdesk/internal/service/query"
)

type Course struct {
	repository Repository
	deliveries DeliveryRepository
	publisher  EventPublisher
	txManager  TxManager
	now        func() time.Time
}

func New(
	repository Repository,
	deliveries DeliveryRepository,
	publisher EventPublisher,
	txManager TxManager,
) *Course {
	return &Course{
		repository: repository,
		deliveries: deliveries,
		publisher:  publisher,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns the open transport jobs matching q.
func (s *Course) List(ctx context.Context, q entities.Query) ([]entities.Course, error) {
	courses, err := s.repository.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available courses: %w", err)
	}

	return query.Apply(courses, q), nil
}

// Accept hands an open course to carrier. The course leaves the offers and an
// assigned delivery under the same id is created in one transaction, together
// with its first status event.
func (s *Course) Accept(ctx context.Context, courseID, carrier string) (*entities.Delivery, error) {
	if !isValidCourseID(courseID) {
		return nil, ErrInvalidCourseID
	}
	if strings.TrimSpace(carrier) == "" {
		return nil, ErrMissingCarrier
	}

	var created *entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, courseID)
		if err != nil {
			return fmt.Errorf("get course: %w", err)
		}
		if !current.Available {
			return fmt.Errorf("%s: %w", courseID, ErrCourseTaken)
		}

		acceptedAt := s.now()
		if err := s.repository.MarkAccepted(ctx, courseID, carrier, acceptedAt); err != nil {
			return fmt.Errorf("mark course accepted: %w", err)
		}

		created, err = s.deliveries.Create(ctx, toDelivery(*current, carrier))
		if errors.Is(err, delivery.ErrDeliveryExists) {
			return fmt.Errorf("%s: %w", courseID, ErrCourseTaken)
		}
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		err = s.publisher.PublishDeliveryStatusChanged(ctx, entities.DeliveryStatusChange{
			DeliveryID: created.ID,
			To:         entities.DeliveryAssigned,
			Progress:   created.Progress,
			ChangedAt:  acceptedAt,
		})
		if err != nil {
			return fmt.Errorf("publish status change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func toDelivery(c entities.Course, carrier string) entities.Delivery {
	progress, _ := entities.DeliveryAssigned.Progress()

	return entities.Delivery{
		ID:               c.ID,
		Client:           c.Client,
		Route:            cityOf(c.PickupAddress) + " → " + cityOf(c.DeliveryAddress),
		PickupAddress:    c.PickupAddress,
		DeliveryAddress:  c.DeliveryAddress,
		Status:           entities.DeliveryAssigned,
		Progress:         progress,
		EstimatedArrival: c.DeliveryDate,
		Cargo:            c.CargoType,
		Weight:           c.Weight,
		Payment:          c.Payment,
		StartDate:        c.PickupDate,
		Carrier:          carrier,
	}
}
