package usecase

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// CreatePaymentRequest carries the payer data submitted with a new payment.
// Method is kept raw so unknown values can be rejected before anything is stored.
type CreatePaymentRequest struct {
	PayerName  string
	PayerEmail string
	PayerCPF   string
	Amount     int64
	Method     int
	Card       *entity.CreditCard
}

// PaymentResult describes an accepted payment
type PaymentResult struct {
	Payment *entity.Payment
	Ticket  string // Bank slip number; empty for card payments
}

// PaymentUseCase defines payment operations.
// Admins see every payment; other callers only see their own.
type PaymentUseCase interface {
	// ListPayments returns the payments visible to the caller
	ListPayments(ctx context.Context, actor *entity.User) ([]*entity.Payment, error)

	// GetPayment returns a payment visible to the caller
	GetPayment(ctx context.Context, actor *entity.User, id uint64) (*entity.Payment, error)

	// CreatePayment records a payment owned by the caller
	CreatePayment(ctx context.Context, actor *entity.User, req CreatePaymentRequest) (*PaymentResult, error)

	// DeletePayment removes a payment visible to the caller
	DeletePayment(ctx context.Context, actor *entity.User, id uint64) error
}
