package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistPublicSavedShare records that a signed-in user visited a
// public wishlist, so it can be surfaced later under "shared with me".
// Created idempotently on first view.
type WishlistPublicSavedShare struct {
	WishlistID uuid.UUID `gorm:"type:uuid;primaryKey" json:"wishlist_id"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`
}

func (WishlistPublicSavedShare) TableName() string {
	return "wishlist_public_saved_shares"
}
