package product_categories_get

import (
	"net/http"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, dto.FromCategories(h.service.Categories()))
}
