package user

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// DeleteUser removes the user and every payment it owns in one transaction
func (u *UserUseCase) DeleteUser(ctx context.Context, actor *entity.User, publicID string) (*entity.User, error) {
	if err := u.requireAdmin(actor, "delete user"); err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to roll back user deletion", map[string]any{
					"public_id": publicID,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	userRepo := u.uow.GetUserRepository(txCtx)
	paymentRepo := u.uow.GetPaymentRepository(txCtx)

	user, err := userRepo.GetByPublicID(txCtx, publicID)
	if err != nil {
		return nil, err
	}

	removed, err := paymentRepo.DeleteByOwner(txCtx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := userRepo.Delete(txCtx, user.ID); err != nil {
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	u.logger.Info("User deleted", map[string]any{
		"public_id":        publicID,
		"payments_removed": removed,
		"deleted_by":       actor.PublicID,
	})

	return user, nil
}
