package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries caps the attempts after the first one. Zero leaves only MaxElapsedTime as the limit.
	MaxRetries uint64

	// ShouldRetry filters errors worth another attempt. Nil retries every error.
	ShouldRetry ShouldRetryFunc
}
