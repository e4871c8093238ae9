//go:generate mockgen -source=draft_cleanup.go -destination=./draft_cleanup_mocks_test.go -package=draft_cleanup_test
package draft_cleanup

import (
	"context"
	"time"

	"freightdesk/pkg/logger"
)

type Service interface {
	EvictIdle(ctx context.Context) (int64, error)
}

// DraftCleanup drops drafts left idle by shippers who never came back.
type DraftCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDraftCleanup(log logger.Logger, service Service, interval time.Duration) *DraftCleanup {
	return &DraftCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DraftCleanup) TTL() time.Duration {
	return d.interval
}

func (d *DraftCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	evicted, err := d.service.EvictIdle(ctxWithTimeout)

	if evicted > 0 {
		d.log.With(
			logger.NewField("idle_drafts", evicted),
		).Info("draft cleanup")
	}

	return err
}

func (d *DraftCleanup) Info() string {
	return "draft cleanup"
}
