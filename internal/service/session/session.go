package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"freightdesk/internal/entities"
)

const issuer = "freightdesk"

type Config struct {
	Secret []byte
	TTL    time.Duration
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type claims struct {
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service issues signed session tokens. A token is only honoured while its
// session is still held, so Logout takes effect before the token expires.
type Service struct {
	users UserRepository
	cfg   Config
	now   func() time.Time

	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func New(users UserRepository, cfg Config, opts ...Option) *Service {
	s := &Service{
		users:    users,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: make(map[string]entities.Session),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Login(ctx context.Context, email string, role entities.Role) (*entities.SessionToken, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%q: %w", role, ErrInvalidRole)
	}

	now := s.now()
	session := entities.Session{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	})

	signed, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.users.RecordLogin(ctx, email, now); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return &entities.SessionToken{
		Session: session,
		Token:   signed,
	}, nil
}

func (s *Service) Authenticate(_ context.Context, token string) (*entities.Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) {
			return s.cfg.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	s.mu.RLock()
	session, ok := s.sessions[c.ID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *Service) Logout(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *Service) EvictExpired(ctx context.Context) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted int64
	for id, session := range s.sessions {
		if err := ctx.Err(); err != nil {
			return evicted, fmt.Errorf("evict expired sessions: %w", err)
		}
		if session.Expired(now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted, nil
}
