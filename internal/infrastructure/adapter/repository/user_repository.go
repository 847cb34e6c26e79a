package repository

import (
	"context"
	"fmt"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		PublicID:     m.PublicID,
		Username:     m.Username,
		PasswordHash: m.Password,
		IsAdmin:      m.Admin,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, EntityTypeUser)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) {
		r.logger.Debug(fmt.Sprintf("User not found when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}

	return mapped
}

// List retrieves every user ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var models []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, nil)
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, userModelToEntity(&models[i]))
	}

	r.logger.Debug("Users listed", map[string]any{
		"count": len(users),
	})

	return users, nil
}

// GetByPublicID retrieves a user by its public identifier
func (r *UserRepository) GetByPublicID(ctx context.Context, publicID string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{
			"public_id": publicID,
		})
	}

	return userModelToEntity(&userModel), nil
}

// GetFirstByUsername retrieves the oldest user with the given username
func (r *UserRepository) GetFirstByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).Order("id").First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, map[string]any{
			"username": username,
		})
	}

	return userModelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		PublicID: user.PublicID,
		Username: user.Username,
		Password: user.PasswordHash,
		Admin:    user.IsAdmin,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{
			"public_id": user.PublicID,
			"username":  user.Username,
		})
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":   user.ID,
		"public_id": user.PublicID,
		"admin":     user.IsAdmin,
	})
	return nil
}

// Promote sets the admin flag for the user
func (r *UserRepository) Promote(ctx context.Context, publicID string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("public_id = ?", publicID).
		Update("admin", true)

	if result.Error != nil {
		return r.handleDatabaseError("promoting user", result.Error, map[string]any{
			"public_id": publicID,
		})
	}

	if result.RowsAffected == 0 {
		// Promoting an existing admin also affects zero rows on some drivers
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("public_id = ?", publicID).Count(&count).Error; err != nil {
			return r.handleDatabaseError("promoting user", err, map[string]any{
				"public_id": publicID,
			})
		}
		if count == 0 {
			return r.errorMapper.notFound(EntityTypeUser)
		}
	}

	r.logger.Info("User promoted", map[string]any{
		"public_id": publicID,
	})
	return nil
}

// Delete removes the user row
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, map[string]any{
			"user_id": id,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during delete", map[string]any{
			"user_id": id,
		})
		return r.errorMapper.notFound(EntityTypeUser)
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}

// CountByUsername returns how many users share the username
func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting users", err, map[string]any{
			"username": username,
		})
	}
	return count, nil
}
