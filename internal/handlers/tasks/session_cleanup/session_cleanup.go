//go:generate mockgen -source=session_cleanup.go -destination=./session_cleanup_mocks_test.go -package=session_cleanup_test
package session_cleanup

import (
	"context"
	"time"

	"freightdesk/pkg/logger"
)

type Service interface {
	EvictExpired(ctx context.Context) (int64, error)
}

type SessionCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSessionCleanup(log logger.Logger, service Service, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	evicted, err := s.service.EvictExpired(ctxWithTimeout)

	if evicted > 0 {
		s.log.With(
			logger.NewField("expired_sessions", evicted),
		).Info("session cleanup")
	}

	return err
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}
