package core

import "time"

// TimeProvider is the clock used by token expiry, migration bookkeeping and SQL timing.
// Tests substitute a fixed clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
