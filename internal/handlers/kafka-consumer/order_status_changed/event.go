package order_status_changed

import "time"

// statusChangedEvent is the order.status.changed payload emitted by the order service.
type statusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

func (e statusChangedEvent) valid() bool {
	return e.OrderID != "" && e.Status != ""
}
