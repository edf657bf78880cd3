package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistSharedWith grants a non-owner read access (and lock rights)
// to a shared-status wishlist.
type WishlistSharedWith struct {
	WishlistID uuid.UUID `gorm:"type:uuid;primaryKey" json:"wishlist_id"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WishlistSharedWith) TableName() string {
	return "wishlist_shared_with"
}
