package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Phone          string    `gorm:"type:varchar(32);unique;not null"`
	Name           string    `gorm:"type:varchar(100)"`
	Email          string    `gorm:"type:varchar(255)"`
	UserType       string    `gorm:"type:varchar(20);not null;default:'customer'"`
	Specialization string    `gorm:"type:varchar(255)"`
	Experience     string    `gorm:"type:varchar(255)"`
	IsVerified     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Projects []*ProjectModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// VerificationCodeModel mirrors the 'verification_codes' table. Only the
// bcrypt hash of the code is stored.
type VerificationCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Phone     string    `gorm:"type:varchar(32);not null;index"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	IsUsed    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}
