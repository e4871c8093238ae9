package delivery_window

import (
	"time"

	"freightdesk/internal/entities"
)

const pickupDateLayout = "2006-01-02"

type DeliveryWindowFactory struct{}

func New() *DeliveryWindowFactory {
	return &DeliveryWindowFactory{}
}

// Estimate returns the delivery window for a pickup date in ISO form.
func (f *DeliveryWindowFactory) Estimate(urgency entities.Urgency, pickupDate string) (*entities.DeliveryWindow, bool) {
	pickup, err := time.Parse(pickupDateLayout, pickupDate)
	if err != nil {
		return nil, false
	}

	var minDays, maxDays int
	switch urgency {
	case entities.UrgencyUrgent:
		minDays, maxDays = 0, 0
	case entities.UrgencyExpress:
		minDays, maxDays = 1, 2
	case entities.UrgencyStandard:
		minDays, maxDays = 3, 5
	default:
		return nil, false
	}

	return &entities.DeliveryWindow{
		From: pickup.AddDate(0, 0, minDays),
		To:   pickup.AddDate(0, 0, maxDays),
	}, true
}
