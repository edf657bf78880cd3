package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// ShareStatus controls which access rules apply to a wishlist.
type ShareStatus string

const (
	ShareStatusPrivate ShareStatus = "private"
	ShareStatusShared  ShareStatus = "shared"
	ShareStatusPublic  ShareStatus = "public"
)

// Scan implements sql.Scanner interface
func (s *ShareStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = ShareStatus(v)
	case []byte:
		*s = ShareStatus(v)
	default:
		*s = ShareStatusPrivate
	}
	return nil
}

// Value implements driver.Valuer interface
func (s ShareStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Valid reports whether s is one of the known share statuses.
func (s ShareStatus) Valid() bool {
	switch s {
	case ShareStatusPrivate, ShareStatusShared, ShareStatusPublic:
		return true
	}
	return false
}

// Wishlist is a user-owned list of items. Ids are UUIDv7 so they stay
// time-ordered.
type Wishlist struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string      `gorm:"not null;size:200" json:"title"`
	Description string      `gorm:"size:2000" json:"description"`
	ShareStatus ShareStatus `gorm:"type:varchar(16);not null;default:'private'" json:"share_status"`
	CreatedAt   time.Time   `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"default:now()" json:"updated_at"`

	// Relations
	Owners     []WishlistOwner      `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"owners,omitempty"`
	SharedWith []WishlistSharedWith `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"shared_with,omitempty"`
	Items      []WishlistItem       `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
