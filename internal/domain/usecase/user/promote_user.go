package user

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// PromoteUser grants the admin role. Promoting an existing admin succeeds without changes.
func (u *UserUseCase) PromoteUser(ctx context.Context, actor *entity.User, publicID string) (*entity.User, error) {
	if err := u.requireAdmin(actor, "promote user"); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if user.IsAdmin {
		return user, nil
	}

	if err := u.userRepo.Promote(ctx, publicID); err != nil {
		return nil, err
	}
	user.Promote()

	u.logger.Info("User promoted", map[string]any{
		"public_id":   publicID,
		"promoted_by": actor.PublicID,
	})

	return user, nil
}
