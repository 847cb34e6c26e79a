package model

// Payment represents the database model for payments.
// Card columns are NULL for bank slip payments.
type Payment struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement"`
	UserID        uint64  `gorm:"column:user_id;not null;index:idx_payments_user_id"`
	Name          string  `gorm:"column:name;type:varchar(100);not null"`
	Email         string  `gorm:"column:email;type:varchar(50);not null"`
	CPF           string  `gorm:"column:cpf;type:varchar(11);not null"`
	Amount        int64   `gorm:"column:amount;not null"`
	PaymentMethod int     `gorm:"column:payment_method;not null"`
	NameCard      *string `gorm:"column:name_card;type:varchar(50)"`
	NumCard       *string `gorm:"column:num_card;type:varchar(16)"`
	Expiration    *string `gorm:"column:expiration;type:varchar(5)"`
	CVV           *int    `gorm:"column:cvv"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
