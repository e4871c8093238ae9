package delivery_status

import (
	"time"

	"freightdesk/internal/entities"
)

// statusChangedEvent is the delivery.status.changed wire format.
type statusChangedEvent struct {
	DeliveryID string    `json:"delivery_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Progress   int       `json:"progress"`
	ChangedAt  time.Time `json:"changed_at"`
}

func fromDomain(change entities.DeliveryStatusChange) statusChangedEvent {
	return statusChangedEvent{
		DeliveryID: change.DeliveryID,
		From:       change.From.String(),
		To:         change.To.String(),
		Progress:   change.Progress,
		ChangedAt:  change.ChangedAt.UTC(),
	}
}
