//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_advance_post_test
package draft_advance_post

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
	Advance(ownerID, draftID string) (*entities.DraftState, error)
}
