package entity

import (
	"strings"

	errs "github.com/leoandrade/payment-api/internal/domain/error"
)

// PaymentMethod identifies how a payment is settled. The numeric values are part of the wire format.
type PaymentMethod int

// Payment methods
const (
	PaymentMethodBankSlip   PaymentMethod = 0
	PaymentMethodCreditCard PaymentMethod = 1
)

// String returns the label used in API responses
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodBankSlip:
		return "boleto"
	case PaymentMethodCreditCard:
		return "credit card"
	default:
		return "unknown"
	}
}

// IsValid reports whether the method is one the service can process
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodBankSlip || m == PaymentMethodCreditCard
}

// CreditCard holds the card fields recorded for credit card payments
type CreditCard struct {
	HolderName string
	Number     string
	Expiration string // MM/YY
	CVV        int
}

// Payment is an immutable record of a charge made by a user
type Payment struct {
	ID         uint64
	OwnerID    uint64 // ID of the user who made the payment
	PayerName  string
	PayerEmail string
	PayerCPF   string
	Amount     int64 // Smallest currency unit
	Method     PaymentMethod
	Card       *CreditCard // Set only when Method is PaymentMethodCreditCard
}

// NewPayment validates and builds a payment for the given owner.
// Card data is dropped for bank slip payments and required for credit card payments.
func NewPayment(
	ownerID uint64,
	payerName string,
	payerEmail string,
	payerCPF string,
	amount int64,
	method PaymentMethod,
	card *CreditCard,
) (*Payment, error) {
	if !method.IsValid() {
		return nil, errs.ErrInvalidPaymentMethod
	}
	if ownerID == 0 {
		return nil, errs.ErrInvalidRequest
	}

	payment := &Payment{
		OwnerID:    ownerID,
		PayerName:  payerName,
		PayerEmail: payerEmail,
		PayerCPF:   payerCPF,
		Amount:     amount,
		Method:     method,
	}

	if method == PaymentMethodCreditCard {
		if card == nil || !card.complete() {
			return nil, errs.ErrMissingCardData
		}
		c := *card
		payment.Card = &c
	}

	return payment, nil
}

// IsCreditCard reports whether the payment was settled by card
func (p *Payment) IsCreditCard() bool {
	return p.Method == PaymentMethodCreditCard
}

func (c *CreditCard) complete() bool {
	return strings.TrimSpace(c.HolderName) != "" &&
		strings.TrimSpace(c.Number) != "" &&
		strings.TrimSpace(c.Expiration) != "" &&
		c.CVV > 0
}
