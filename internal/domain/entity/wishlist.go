package entity

import (
	"time"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/pkg/base62"
)

// Wishlist is the wire-facing projection of a wishlist. Ids are base62
// encoded; the internal UUID never crosses the boundary.
type Wishlist struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ShareStatus string    `json:"shareStatus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnedWishlist additionally carries the caller's role, so clients can
// decide whether to offer owner management.
type OwnedWishlist struct {
	Wishlist
	Role string `json:"role"`
}

// User is the wire-facing projection of a user.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Owner is a user together with their owner role on a wishlist.
type Owner struct {
	User
	Role string `json:"role"`
}

func NewWishlist(m *model.Wishlist) Wishlist {
	return Wishlist{
		ID:          base62.Encode(m.ID),
		Title:       m.Title,
		Description: m.Description,
		ShareStatus: string(m.ShareStatus),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewOwnedWishlist(m *model.Wishlist, role model.OwnerRole) OwnedWishlist {
	return OwnedWishlist{
		Wishlist: NewWishlist(m),
		Role:     string(role),
	}
}

func NewUser(m *model.User) User {
	return User{
		ID:          base62.Encode(m.ID),
		Email:       m.Email,
		DisplayName: m.DisplayName,
	}
}

func NewOwner(m *model.WishlistOwner) Owner {
	return Owner{
		User: NewUser(&m.User),
		Role: string(m.Role),
	}
}
