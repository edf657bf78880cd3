package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItemStatus is the lifecycle state of a wishlist item.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusArchived ItemStatus = "archived"
)

// Scan implements sql.Scanner interface
func (s *ItemStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = ItemStatus(v)
	case []byte:
		*s = ItemStatus(v)
	default:
		*s = ItemStatusActive
	}
	return nil
}

// Value implements driver.Valuer interface
func (s ItemStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Valid reports whether s is one of the known item statuses.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusActive || s == ItemStatusArchived
}

// MaxItemLinks caps the number of links an item may carry.
const MaxItemLinks = 5

// WishlistItem belongs exclusively to its wishlist and is removed with
// it. Lock fields are only mutated through the lock protocol; any
// status transition resets them.
type WishlistItem struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	WishlistID     uuid.UUID                   `gorm:"type:uuid;not null;index:idx_items_wishlist_status" json:"wishlist_id"`
	Title          string                      `gorm:"not null;size:200" json:"title"`
	Description    string                      `gorm:"size:2000" json:"description"`
	Links          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"links"`
	EstimatedPrice *string                     `gorm:"size:100" json:"estimated_price,omitempty"`
	Status         ItemStatus                  `gorm:"type:varchar(16);not null;default:'active';index:idx_items_wishlist_status" json:"status"`
	LockedUserID   *uuid.UUID                  `gorm:"type:uuid" json:"locked_user_id,omitempty"`
	LockChangedAt  time.Time                   `json:"lock_changed_at"`
	CreatedAt      time.Time                   `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time                   `gorm:"default:now()" json:"updated_at"`

	// Relations
	LockedUser *User `gorm:"foreignKey:LockedUserID" json:"locked_user,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// Locked reports whether the item currently holds an advisory lock.
func (i *WishlistItem) Locked() bool {
	return i.LockedUserID != nil
}
