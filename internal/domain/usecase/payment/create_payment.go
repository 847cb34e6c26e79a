package payment

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
)

// CreatePayment records a payment owned by the caller.
// Bank slips are always accepted and return a ticket. Card payments are stored only when authorized.
func (p *PaymentUseCase) CreatePayment(ctx context.Context, actor *entity.User, req usecase.CreatePaymentRequest) (*usecase.PaymentResult, error) {
	if actor == nil {
		return nil, errs.ErrInvalidToken
	}

	method := entity.PaymentMethod(req.Method)
	if !method.IsValid() {
		p.logger.Warn("Rejected payment with unknown method", map[string]any{
			"owner_id": actor.ID,
			"method":   req.Method,
		})
		return nil, errs.ErrInvalidPaymentMethod
	}

	payment, err := entity.NewPayment(
		actor.ID,
		req.PayerName,
		req.PayerEmail,
		req.PayerCPF,
		req.Amount,
		method,
		req.Card,
	)
	if err != nil {
		return nil, err
	}

	switch method {
	case entity.PaymentMethodBankSlip:
		return p.createBankSlip(ctx, payment)
	default:
		return p.createCardPayment(ctx, payment)
	}
}

func (p *PaymentUseCase) createBankSlip(ctx context.Context, payment *entity.Payment) (*usecase.PaymentResult, error) {
	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errs.NewPaymentError(0, payment.OwnerID, payment.Method.String(), "failed to store bank slip payment", err)
	}

	ticket := entity.NewBankSlipTicket(p.random)

	p.logger.Info("Bank slip payment created", map[string]any{
		"payment_id": payment.ID,
		"owner_id":   payment.OwnerID,
		"amount":     payment.Amount,
	})

	return &usecase.PaymentResult{Payment: payment, Ticket: ticket}, nil
}

func (p *PaymentUseCase) createCardPayment(ctx context.Context, payment *entity.Payment) (*usecase.PaymentResult, error) {
	if !p.authorizer.Authorize(payment.Card, payment.Amount) {
		p.logger.Info("Card payment declined", map[string]any{
			"owner_id": payment.OwnerID,
			"amount":   payment.Amount,
		})
		return nil, errs.NewPaymentError(0, payment.OwnerID, payment.Method.String(), "declined by issuer", errs.ErrPaymentDeclined)
	}

	// The approval is not persisted on its own; a failed insert loses it.
	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errs.NewPaymentError(0, payment.OwnerID, payment.Method.String(), "failed to store approved card payment", err)
	}

	p.logger.Info("Card payment approved", map[string]any{
		"payment_id": payment.ID,
		"owner_id":   payment.OwnerID,
		"amount":     payment.Amount,
	})

	return &usecase.PaymentResult{Payment: payment}, nil
}
