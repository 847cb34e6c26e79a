package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/model"
	timeprovider "github.com/leoandrade/payment-api/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing against an in-memory SQLite database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager with a database private to the test
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	config := &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("%s?mode=memory&cache=shared", name),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})
}

// SetupTestDB applies the schema through the migration manager
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// CreateTestUser inserts a user row directly
func (m *TestDBManager) CreateTestUser(t *testing.T, publicID, username string, admin bool) model.User {
	t.Helper()

	user := model.User{
		PublicID: publicID,
		Username: username,
		Password: "hash-" + username,
		Admin:    admin,
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestPayment inserts a bank slip payment row directly
func (m *TestDBManager) CreateTestPayment(t *testing.T, ownerID uint64, amount int64) model.Payment {
	t.Helper()

	payment := model.Payment{
		UserID: ownerID,
		Name:   "Payer",
		Email:  "payer@example.com",
		CPF:    "12345678901",
		Amount: amount,
	}

	if err := m.Manager.DB().Omit("User").Create(&payment).Error; err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}
	return payment
}
