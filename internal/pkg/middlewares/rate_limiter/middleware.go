package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"freightdesk/pkg/logger"
)

const rejectedBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// Middleware rejects requests with 429 once the caller's bucket is empty. Callers are
// keyed by remote IP, so one noisy client does not starve the others.
// rateLimiterQPS is only echoed back in X-RateLimit-Limit.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))

			if rlimiter.Allow(client) {
				next.ServeHTTP(w, r)
				return
			}

			route := routeTemplate(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("client", client),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte(rejectedBody)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("failed to write rate limit response")
			}
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// routeTemplate keeps the metric label bounded to the registered routes.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
