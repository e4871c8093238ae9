package users_get

import (
	"net/http"

	"freightdesk/internal/dto"
	"freightdesk/internal/entities"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/pkg/logger"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := dto.ParseQuery(
		r.URL.Query(),
		entities.FilterKeyRole,
		entities.FilterKeyStatus,
	)

	users, err := h.service.List(r.Context(), q)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list users")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromUsers(users))
}
