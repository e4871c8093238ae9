package draft_advance_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/internal/pkg/middlewares/auth"
	"freightdesk/internal/service/draft"
	"freightdesk/internal/service/intake"
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

	state, err := h.service.Advance(current.ID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrDraftNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, draft.ErrInvalidStep):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("advance draft")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDraftState(*state))
}
