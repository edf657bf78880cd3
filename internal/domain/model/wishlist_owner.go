package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// OwnerRole distinguishes the creator of a wishlist from owners added
// later. Only the creator manages the owner set.
type OwnerRole string

const (
	OwnerRoleCreator OwnerRole = "creator"
	OwnerRoleOwner   OwnerRole = "owner"
)

// Scan implements sql.Scanner interface
func (r *OwnerRole) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*r = OwnerRole(v)
	case []byte:
		*r = OwnerRole(v)
	default:
		*r = OwnerRoleOwner
	}
	return nil
}

// Value implements driver.Valuer interface
func (r OwnerRole) Value() (driver.Value, error) {
	return string(r), nil
}

// WishlistOwner is the membership row linking a user to a wishlist it
// owns. A wishlist has exactly one creator and at least one owner at
// all times.
type WishlistOwner struct {
	WishlistID uuid.UUID `gorm:"type:uuid;primaryKey" json:"wishlist_id"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role       OwnerRole `gorm:"type:varchar(16);not null;default:'owner'" json:"role"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WishlistOwner) TableName() string {
	return "wishlist_owners"
}
