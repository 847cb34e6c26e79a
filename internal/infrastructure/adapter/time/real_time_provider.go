package time

import (
	"time"

	"github.com/leoandrade/payment-api/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}
