package ping_get

import (
	"net/http"
	"time"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service string
}

// New answers with the service name so a client can tell which binary it reached.
func New(log handlerLogger, service string) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("service", service)),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message:    "pong",
		Service:    h.service,
		ServerTime: time.Now().UTC(),
	}

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, h.log, http.StatusOK, res)
}
