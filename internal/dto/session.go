package dto

import (
	"time"

	"freightdesk/internal/entities"
)

type SessionCreate struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSessionToken(t entities.SessionToken) SessionResponse {
	return SessionResponse{
		Token:     t.Token,
		SessionID: t.Session.ID,
		Email:     t.Session.Email,
		Role:      t.Session.Role.String(),
		RoleLabel: t.Session.Role.Label(),
		ExpiresAt: t.Session.ExpiresAt,
	}
}
