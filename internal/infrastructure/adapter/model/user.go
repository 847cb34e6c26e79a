package model

// User represents the database model for credentials
type User struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	PublicID string `gorm:"column:public_id;type:varchar(50);uniqueIndex:idx_users_public_id;not null"`
	Username string `gorm:"column:username;type:varchar(50);index:idx_users_username;not null"`
	Password string `gorm:"column:password;type:varchar(80);not null"`
	Admin    bool   `gorm:"column:admin;not null;default:false"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
