package dashboard_get

import (
	"errors"
	"net/http"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/internal/pkg/middlewares/auth"
	"freightdesk/internal/service/dashboard"
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
	current, ok := auth.SessionFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	summary, err := h.service.Summary(r.Context(), current.Role)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrUnknownRole):
			w.WriteHeader(http.StatusForbidden)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("role", current.Role.String()),
			).Error("dashboard summary")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDashboard(*summary))
}
