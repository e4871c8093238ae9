//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_categories_get_test
package product_categories_get

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
	Categories() []entities.Category
}
