//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_post_test
package draft_post

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
	Create(ownerID string) (*entities.DraftState, error)
}
