package database

import (
	"context"
	"math/rand"
	"time"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// connectRetryConfig derives the startup retry policy from the database config
func connectRetryConfig(config *Config) RetryConfig {
	return RetryConfig{
		MaxAttempts:   config.RetryAttempts,
		RetryInterval: config.RetryDelay,
		MaxInterval:   8 * config.RetryDelay,
		JitterFactor:  0.2,
	}
}

// retryOperation runs operation until it succeeds, attempts run out or ctx is done.
// It is only used to open the initial connection; request paths never retry.
func retryOperation(ctx context.Context, config RetryConfig, operation func() error, logger coreport.Logger) error {
	attempts := max(config.MaxAttempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Database connection failed, retrying", map[string]any{
			"attempt":     attempt + 1,
			"of":          attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Error("All connection attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 && backoff > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}

	return backoff
}
