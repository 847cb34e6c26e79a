package repository

import (
	"context"
	"fmt"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/persistence"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository implements PaymentRepository interface using GORM
type PaymentRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// scoped restricts the query to rows visible in the scope
func scoped(db *gorm.DB, scope persistence.PaymentScope) *gorm.DB {
	if scope.All {
		return db
	}
	return db.Where("user_id = ?", scope.OwnerID)
}

func paymentModelToEntity(m *model.Payment) *entity.Payment {
	payment := &entity.Payment{
		ID:         m.ID,
		OwnerID:    m.UserID,
		PayerName:  m.Name,
		PayerEmail: m.Email,
		PayerCPF:   m.CPF,
		Amount:     m.Amount,
		Method:     entity.PaymentMethod(m.PaymentMethod),
	}

	if payment.IsCreditCard() {
		card := &entity.CreditCard{}
		if m.NameCard != nil {
			card.HolderName = *m.NameCard
		}
		if m.NumCard != nil {
			card.Number = *m.NumCard
		}
		if m.Expiration != nil {
			card.Expiration = *m.Expiration
		}
		if m.CVV != nil {
			card.CVV = *m.CVV
		}
		payment.Card = card
	}

	return payment
}

func paymentEntityToModel(p *entity.Payment) *model.Payment {
	m := &model.Payment{
		UserID:        p.OwnerID,
		Name:          p.PayerName,
		Email:         p.PayerEmail,
		CPF:           p.PayerCPF,
		Amount:        p.Amount,
		PaymentMethod: int(p.Method),
	}

	if p.Card != nil {
		holder, number, expiration, cvv := p.Card.HolderName, p.Card.Number, p.Card.Expiration, p.Card.CVV
		m.NameCard = &holder
		m.NumCard = &number
		m.Expiration = &expiration
		m.CVV = &cvv
	}

	return m
}

// handleDatabaseError standardizes database error handling
func (r *PaymentRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, EntityTypePayment)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) {
		r.logger.Debug(fmt.Sprintf("Payment not found when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}

	return mapped
}

// List retrieves payments visible in the scope ordered by ID
func (r *PaymentRepository) List(ctx context.Context, scope persistence.PaymentScope) ([]*entity.Payment, error) {
	var models []model.Payment
	if err := scoped(r.db.WithContext(ctx), scope).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing payments", err, map[string]any{
			"owner_id": scope.OwnerID,
			"all":      scope.All,
		})
	}

	payments := make([]*entity.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, paymentModelToEntity(&models[i]))
	}

	return payments, nil
}

// Get retrieves a payment visible in the scope
func (r *PaymentRepository) Get(ctx context.Context, scope persistence.PaymentScope, id uint64) (*entity.Payment, error) {
	var paymentModel model.Payment
	result := scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting payment", result.Error, map[string]any{
			"payment_id": id,
			"owner_id":   scope.OwnerID,
		})
	}

	return paymentModelToEntity(&paymentModel), nil
}

// Create persists a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := paymentEntityToModel(payment)

	if err := r.db.WithContext(ctx).Omit("User").Create(paymentModel).Error; err != nil {
		return r.handleDatabaseError("creating payment", err, map[string]any{
			"owner_id": payment.OwnerID,
			"method":   payment.Method.String(),
		})
	}

	payment.ID = paymentModel.ID

	r.logger.Debug("Payment stored", map[string]any{
		"payment_id": payment.ID,
		"owner_id":   payment.OwnerID,
	})
	return nil
}

// Delete removes a payment visible in the scope
func (r *PaymentRepository) Delete(ctx context.Context, scope persistence.PaymentScope, id uint64) error {
	result := scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).Delete(&model.Payment{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting payment", result.Error, map[string]any{
			"payment_id": id,
			"owner_id":   scope.OwnerID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}

	return nil
}

// DeleteByOwner removes every payment owned by the user
func (r *PaymentRepository) DeleteByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&model.Payment{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting owner payments", result.Error, map[string]any{
			"owner_id": ownerID,
		})
	}

	r.logger.Debug("Owner payments deleted", map[string]any{
		"owner_id": ownerID,
		"count":    result.RowsAffected,
	})
	return result.RowsAffected, nil
}
