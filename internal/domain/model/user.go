package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record owned by the external auth provider.
// Rows are upserted lazily from verified session claims and treated as
// read-mostly reference data.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"not null;uniqueIndex;size:320" json:"email"`
	DisplayName string    `gorm:"size:200" json:"display_name"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
