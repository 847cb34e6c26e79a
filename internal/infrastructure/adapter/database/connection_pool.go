package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
)

// PoolObserver receives connection pool statistics on every collection
type PoolObserver interface {
	ObservePool(stats sql.DBStats)
}

// ConnectionPoolMonitor periodically samples the database connection pool
type ConnectionPoolMonitor struct {
	db        *Manager
	logger    coreport.Logger
	observers []PoolObserver
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger, observers ...PoolObserver) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:        db,
		logger:    logger,
		observers: observers,
		stopChan:  make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collect(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collect(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring. Safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) collect() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	for _, observer := range m.observers {
		observer.ObservePool(stats)
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}
