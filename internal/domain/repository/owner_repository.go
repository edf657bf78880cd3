package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wishbeam/wishbeam/internal/domain/model"
)

// OwnerRepository manages the owner membership rows of a wishlist.
type OwnerRepository interface {
	List(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistOwner, error)

	IsOwner(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error)

	Add(ctx context.Context, wishlistID, userID uuid.UUID, role model.OwnerRole) error

	// Remove deletes the owner row and reports whether it existed.
	Remove(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error)
}
