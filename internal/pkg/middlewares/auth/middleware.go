package auth

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/session"
	"freightdesk/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware resolves the bearer token into a session and rejects the request without one.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, bearerPrefix)
			if !found || strings.TrimSpace(token) == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			s, err := authenticator.Authenticate(r.Context(), strings.TrimSpace(token))
			if err != nil {
				switch {
				case errors.Is(err, session.ErrInvalidToken),
					errors.Is(err, session.ErrSessionExpired),
					errors.Is(err, session.ErrSessionNotFound):
					w.WriteHeader(http.StatusUnauthorized)
				default:
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("authenticate session")
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), *s)))
		})
	}
}

// RequireRole lets through sessions holding one of roles.
func RequireRole(roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := SessionFrom(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, s.Role) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
