package payment

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/persistence"
)

// PaymentUseCase handles payment operations scoped to the caller
type PaymentUseCase struct {
	paymentRepo persistence.PaymentRepository
	authorizer  CardAuthorizer
	random      coreport.RandomSource
	logger      coreport.Logger
}

// NewPaymentUseCase creates a new PaymentUseCase
func NewPaymentUseCase(
	paymentRepo persistence.PaymentRepository,
	authorizer CardAuthorizer,
	random coreport.RandomSource,
	logger coreport.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		authorizer:  authorizer,
		random:      random,
		logger:      logger,
	}
}

// ListPayments returns every payment for admins and the caller's own payments otherwise
func (p *PaymentUseCase) ListPayments(ctx context.Context, actor *entity.User) ([]*entity.Payment, error) {
	if actor == nil {
		return nil, errs.ErrInvalidToken
	}

	return p.paymentRepo.List(ctx, persistence.ScopeFor(actor))
}

// GetPayment returns a payment the caller may see. Foreign payments look absent.
func (p *PaymentUseCase) GetPayment(ctx context.Context, actor *entity.User, id uint64) (*entity.Payment, error) {
	if actor == nil {
		return nil, errs.ErrInvalidToken
	}

	return p.paymentRepo.Get(ctx, persistence.ScopeFor(actor), id)
}

// DeletePayment removes a payment the caller may see
func (p *PaymentUseCase) DeletePayment(ctx context.Context, actor *entity.User, id uint64) error {
	if actor == nil {
		return errs.ErrInvalidToken
	}

	if err := p.paymentRepo.Delete(ctx, persistence.ScopeFor(actor), id); err != nil {
		return err
	}

	p.logger.Info("Payment deleted", map[string]any{
		"payment_id": id,
		"deleted_by": actor.PublicID,
	})
	return nil
}
