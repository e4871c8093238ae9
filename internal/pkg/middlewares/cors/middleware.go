package cors

import (
	"net/http"

	"github.com/go-chi/cors"
)

const preflightMaxAge = 300

// Middleware answers browser preflights for the dashboard front-end. It wraps the
// whole router because mux never routes OPTIONS to handlers registered per method.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After", "X-RateLimit-Limit"},
		AllowCredentials: false,
		MaxAge:           preflightMaxAge,
	})
}
