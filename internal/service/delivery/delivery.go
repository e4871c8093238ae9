package delivery

import (
	"context"
	"fmt"
	"time"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/query"
)

const actualDeliveryLayout = "2006-01-02"

type Delivery struct {
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
	now        func() time.Time
}

func New(
	repository Repository,
	publisher EventPublisher,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (d *Delivery) List(ctx context.Context, q entities.Query) ([]entities.Delivery, error) {
	deliveries, err := d.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return query.Apply(deliveries, q), nil
}

// ChangeStatus moves a delivery along its lifecycle. The row update and the
// status event share one transaction: a failed publish rolls the update back.
func (d *Delivery) ChangeStatus(ctx context.Context, deliveryID string, next entities.DeliveryStatusType) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidStatus(next) {
		return nil, fmt.Errorf("%q: %w", next, ErrInvalidStatus)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByIDForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%s -> %s: %w", current.Status, next, ErrInvalidTransition)
		}

		changedAt := d.now()
		progress := current.Progress
		if p, ok := next.Progress(); ok {
			progress = p
		}

		deliveryModify := entities.DeliveryModify{
			ID:       &deliveryID,
			Status:   &next,
			Progress: &progress,
		}
		if next == entities.DeliveryDelivered {
			actual := changedAt.Format(actualDeliveryLayout)
			deliveryModify.ActualDelivery = &actual
		}

		updated, err = d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}

		err = d.publisher.PublishDeliveryStatusChanged(ctx, entities.DeliveryStatusChange{
			DeliveryID: deliveryID,
			From:       current.Status,
			To:         next,
			Progress:   progress,
			ChangedAt:  changedAt,
		})
		if err != nil {
			return fmt.Errorf("publish status change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
