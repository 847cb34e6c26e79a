package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 300*time.Millisecond, calculateBackoffWithJitter(5, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
	assert.LessOrEqual(t, backoff, 150*time.Millisecond)
}

func TestRetryOperation(t *testing.T) {
	ctx := context.Background()
	cfg := RetryConfig{MaxAttempts: 3, RetryInterval: time.Millisecond}

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retryOperation(ctx, cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Returns the last error", func(t *testing.T) {
		calls := 0
		err := retryOperation(ctx, cfg, func() error {
			calls++
			return errors.New("still down")
		}, logger.NewNoopLogger())

		assert.EqualError(t, err, "still down")
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := retryOperation(cancelled, RetryConfig{MaxAttempts: 5, RetryInterval: time.Hour}, func() error {
			return errors.New("down")
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
