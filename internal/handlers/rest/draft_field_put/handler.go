package draft_field_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"freightdesk/internal/dto"
	"freightdesk/internal/entities"
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

	var fieldUpdateDTO dto.DraftFieldUpdate
	err := json.NewDecoder(r.Body).Decode(&fieldUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	state, err := h.service.UpdateField(current.ID, vars["id"], entities.DraftField(vars["field"]), fieldUpdateDTO.Value)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrDraftNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, draft.ErrUnknownField),
			errors.Is(err, draft.ErrInvalidFlagValue):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, draft.ErrSubmitInProgress):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update draft field")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDraftState(*state))
}
