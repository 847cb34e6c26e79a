package dto

import (
	"github.com/leoandrade/payment-api/internal/domain/entity"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
)

// CreatePaymentRequest represents the API request for a new payment.
// Pointers tell an absent field apart from a zero value; payment_method 0 is a valid choice.
// A user_id key in the body is ignored, the owner is always the caller.
type CreatePaymentRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	CPF           string  `json:"cpf" binding:"required"`
	Amount        *int64  `json:"amount" binding:"required"`
	PaymentMethod *int    `json:"payment_method" binding:"required"`
	NameCard      *string `json:"name_card"`
	NumCard       *string `json:"num_card"`
	Expiration    *string `json:"expiration"`
	CVV           *int    `json:"cvv"`
}

// ToUseCase converts the body into the domain request.
// Card data is attached only when every card field is present.
func (r CreatePaymentRequest) ToUseCase() usecase.CreatePaymentRequest {
	req := usecase.CreatePaymentRequest{
		PayerName:  r.Name,
		PayerEmail: r.Email,
		PayerCPF:   r.CPF,
		Amount:     *r.Amount,
		Method:     *r.PaymentMethod,
	}

	if r.NameCard != nil && r.NumCard != nil && r.Expiration != nil && r.CVV != nil {
		req.Card = &entity.CreditCard{
			HolderName: *r.NameCard,
			Number:     *r.NumCard,
			Expiration: *r.Expiration,
			CVV:        *r.CVV,
		}
	}

	return req
}

// CreditCardResponse is the card block of a credit card payment
type CreditCardResponse struct {
	NameCard   string `json:"name_card"`
	NumCard    string `json:"num_card"`
	Expiration string `json:"expiration"`
	CVV        int    `json:"cvv"`
}

// PaymentResponse is the public view of a payment
type PaymentResponse struct {
	PaymentID     uint64              `json:"payment_id"`
	UserID        uint64              `json:"user_id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	CPF           string              `json:"cpf"`
	Amount        int64               `json:"amount"`
	PaymentMethod string              `json:"payment_method"`
	CreditCard    *CreditCardResponse `json:"credit_card,omitempty"`
}

// PaymentListResponse wraps the payment collection
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// SinglePaymentResponse wraps one payment
type SinglePaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
}

// TicketResponse is returned for an accepted bank slip payment
type TicketResponse struct {
	Ticket string `json:"ticket"`
}

// NewPaymentResponse maps a payment entity to its API representation
func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:     p.ID,
		UserID:        p.OwnerID,
		Name:          p.PayerName,
		Email:         p.PayerEmail,
		CPF:           p.PayerCPF,
		Amount:        p.Amount,
		PaymentMethod: p.Method.String(),
	}

	if p.IsCreditCard() && p.Card != nil {
		resp.CreditCard = &CreditCardResponse{
			NameCard:   p.Card.HolderName,
			NumCard:    p.Card.Number,
			Expiration: p.Card.Expiration,
			CVV:        p.Card.CVV,
		}
	}

	return resp
}

// NewPaymentListResponse maps a slice of payments, never returning a null list
func NewPaymentListResponse(payments []*entity.Payment) PaymentListResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return PaymentListResponse{Payments: out}
}
