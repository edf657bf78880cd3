package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/pkg/base62"
)

// LockStatus is the viewer-relative projection of an item's lock. The
// raw holder id is never exposed to shared or public readers.
type LockStatus string

const (
	LockStatusUnlocked    LockStatus = "unlocked"
	LockStatusCurrentUser LockStatus = "lockedByCurrentUser"
	LockStatusAnotherUser LockStatus = "lockedByAnotherUser"
)

// LockStatusFor computes the lock projection for a viewer. Anonymous
// viewers pass nil and can never see lockedByCurrentUser.
func LockStatusFor(m *model.WishlistItem, viewer *uuid.UUID) LockStatus {
	if !m.Locked() {
		return LockStatusUnlocked
	}
	if viewer != nil && *m.LockedUserID == *viewer {
		return LockStatusCurrentUser
	}
	return LockStatusAnotherUser
}

// Item is the projection served to shared and public readers.
type Item struct {
	ID             string     `json:"id"`
	WishlistID     string     `json:"wishlistId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Links          []string   `json:"links"`
	EstimatedPrice *string    `json:"estimatedPrice"`
	Status         string     `json:"status"`
	LockStatus     LockStatus `json:"lockStatus"`
	LockChangedAt  time.Time  `json:"lockChangedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// OwnedItem is the projection served to owners: the raw lock holder is
// included so collaborating owners can see who claimed an item.
type OwnedItem struct {
	Item
	LockedBy *User `json:"lockedBy,omitempty"`
}

func NewItem(m *model.WishlistItem, viewer *uuid.UUID) Item {
	links := make([]string, len(m.Links))
	copy(links, m.Links)

	return Item{
		ID:             base62.Encode(m.ID),
		WishlistID:     base62.Encode(m.WishlistID),
		Title:          m.Title,
		Description:    m.Description,
		Links:          links,
		EstimatedPrice: m.EstimatedPrice,
		Status:         string(m.Status),
		LockStatus:     LockStatusFor(m, viewer),
		LockChangedAt:  m.LockChangedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func NewOwnedItem(m *model.WishlistItem, viewer *uuid.UUID) OwnedItem {
	item := OwnedItem{
		Item: NewItem(m, viewer),
	}
	if m.Locked() && m.LockedUser != nil {
		lockedBy := NewUser(m.LockedUser)
		item.LockedBy = &lockedBy
	}
	return item
}
