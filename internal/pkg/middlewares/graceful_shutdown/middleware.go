package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const shuttingDownBody = `{"error":"Service Unavailable","message":"Service is shutting down"}`

// Middleware turns requests away with 503 once the server is shutting down and ongoingCtx
// is cancelled. Requests arriving during the readiness drain are still served.
// retryAfter goes out as the Retry-After hint and the connection is not kept alive.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context, retryAfter time.Duration) func(http.Handler) http.Handler {
	retryAfterSeconds := strconv.Itoa(int(retryAfter.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() == nil || !isShuttingDown.Load() {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Connection", "close")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", retryAfterSeconds)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(shuttingDownBody))
		})
	}
}
