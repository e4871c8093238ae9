package draft_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/internal/pkg/middlewares/auth"
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

	state, err := h.service.Get(current.ID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrDraftNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get draft")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDraftState(*state))
}
