package repository

import (
	"context"

	"fmt"
	"strings"
	"testing"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the schema applied
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Payment{}))
	return db
}

func seedUser(t *testing.T, repo *UserRepository, publicID, username string, admin bool) *entity.User {
	t.Helper()

	user := &entity.User{PublicID: publicID, Username: username, PasswordHash: "hash-" + username, IsAdmin: admin}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
