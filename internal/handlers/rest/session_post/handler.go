package session_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightdesk/internal/dto"
	"freightdesk/internal/entities"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/internal/service/session"
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
	var sessionCreateDTO dto.SessionCreate
	err := json.NewDecoder(r.Body).Decode(&sessionCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(r.Context(), sessionCreateDTO.Email, entities.Role(sessionCreateDTO.Role))
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidEmail),
			errors.Is(err, session.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("login")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromSessionToken(*token))
}
