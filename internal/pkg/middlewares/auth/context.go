package auth

import (
	"context"

	"freightdesk/internal/entities"
)

type sessionKey struct{}

func WithSession(ctx context.Context, session entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFrom returns the session resolved by Middleware for this request.
func SessionFrom(ctx context.Context) (entities.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(entities.Session)
	return session, ok
}
