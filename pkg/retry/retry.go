package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/whispr-campus/whispr/pkg/logger"
)

// Config shapes the exponential backoff. MaxRetries counts retries, so an
// operation runs at most MaxRetries+1 times.
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

func (c Config) backOff(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(c.InitialInterval),
		backoff.WithMaxInterval(c.MaxInterval),
		backoff.WithMultiplier(c.Multiplier),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, c.MaxRetries), ctx)
}

// Permanent stops Do from retrying err.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs operation until it succeeds, returns a Permanent error, ctx is
// done or MaxRetries is exhausted. Only use it for idempotent operations.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	attempt := 1
	notify := func(err error, wait time.Duration) {
		log.Warn("Operation failed, retrying",
			"operation", operationName,
			"attempt", attempt,
			"error", err,
			"next_attempt_in", wait.Round(time.Millisecond).String(),
		)
		attempt++
	}

	return backoff.RetryNotify(operation, cfg.backOff(ctx), notify)
}
