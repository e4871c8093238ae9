//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"freightdesk/internal/entities"
)

type OrderAcceptor interface {
	Accept(ctx context.Context, draftID string, draft entities.OrderDraft) (*entities.OrderAcceptance, error)
}

type DeliveryWindowFactory interface {
	Estimate(urgency entities.Urgency, pickupDate string) (*entities.DeliveryWindow, bool)
}
