//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courses_get_test
package courses_get

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
	List(ctx context.Context, q entities.Query) ([]entities.Course, error)
}
