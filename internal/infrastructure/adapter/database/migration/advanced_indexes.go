package migration

import (
	"context"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates PostgreSQL indexes for the scoped payment queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// Owner-scoped list and get
			name: "idx_payments_user_id_id",
			sql:  `CREATE INDEX IF NOT EXISTS idx_payments_user_id_id ON payments (user_id, id)`,
		},
		{
			name: "idx_payments_card",
			sql: `CREATE INDEX IF NOT EXISTS idx_payments_card
				ON payments (user_id)
				WHERE payment_method = 1`,
		},
	}

	for _, index := range indexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL planner tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE payments ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for payments.user_id", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE users ALTER COLUMN username SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for users.username", map[string]any{
			"error": err.Error(),
		})
	}
}
