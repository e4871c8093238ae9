//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_field_put_test
package draft_field_put

import (
	"freightdesk/internal/entities"
	"freightdesk/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateField(ownerID, draftID string, field entities.DraftField, value string) (*entities.DraftState, error)
}
