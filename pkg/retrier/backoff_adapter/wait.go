package backoff_adapter

import (
	"context"
	"fmt"
	"time"

	"freightdesk/pkg/logger"
	"freightdesk/pkg/retrier"
)

// StartupConfig is the schedule used while a process waits for its dependencies to come up.
var StartupConfig = retrier.Config{
	InitialInterval: time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

// WaitReady retries probe under cfg until it succeeds, logging every attempt against dependency.
func WaitReady(
	ctx context.Context,
	log logger.Logger,
	cfg retrier.Config,
	dependency string,
	probe func(context.Context) error,
) error {
	log = log.With(logger.NewField("dependency", dependency))

	var attempt uint64
	err := New(cfg).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("waiting for dependency", logger.NewField("attempt", attempt))

		return probe(ctx)
	})
	if err != nil {
		log.Error("dependency unavailable",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("%s unavailable after %d attempts: %w", dependency, attempt, err)
	}

	log.Info("dependency ready", logger.NewField("attempts", attempt))
	return nil
}
