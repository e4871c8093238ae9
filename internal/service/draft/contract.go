//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_test
package draft

import (
	"context"

	"freightdesk/internal/entities"
)

// Acceptor hands a finished draft to the order service.
type Acceptor interface {
	Accept(ctx context.Context, draftID string, draft entities.OrderDraft) (*entities.OrderAcceptance, error)
}
