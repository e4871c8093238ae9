package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"freightdesk/pkg/logger"
)

const probeTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	probes         map[string]Prober
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, probes map[string]Prober) *Handler {
	return &Handler{
		log:            log.With(),
		isShuttingDown: isShuttingDown,
		probes:         probes,
	}
}

// ServeHTTP answers 204 while the instance can take traffic and 503 during
// shutdown or when a probe fails.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for name, probe := range h.probes {
		if err := probe.Ping(ctx); err != nil {
			h.log.With(
				logger.NewField("probe", name),
				logger.NewField("error", err),
			).Warn("readiness probe failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
