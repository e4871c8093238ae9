//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_submit_post_test
package draft_submit_post

import (
	"context"

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
	Submit(ctx context.Context, ownerID, draftID string) (*entities.DraftState, error)
}
