package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wishbeam/wishbeam/internal/domain/model"
)

// WishlistRepository persists wishlists and answers the scoped lookups
// the access guards are built on. Lookup methods return nil (not an
// error) when no row is visible to the caller, so guards can translate
// a miss into NotFound without learning why the row was filtered.
type WishlistRepository interface {
	// Create inserts the wishlist and its creator owner row in one
	// transaction.
	Create(ctx context.Context, wishlist *model.Wishlist, creator uuid.UUID) error

	Update(ctx context.Context, wishlist *model.Wishlist) error

	// ListOwned returns every wishlist the user owns.
	ListOwned(ctx context.Context, userID uuid.UUID) ([]model.Wishlist, error)

	// GetOwned returns the wishlist and the caller's owner row, scoped
	// to "wishlists where I am an owner".
	GetOwned(ctx context.Context, wishlistID, userID uuid.UUID) (*model.Wishlist, *model.WishlistOwner, error)

	// GetVisibleShared returns the wishlist when it is public, or
	// shared and shared with the user. Ownership is not considered
	// here; the shared guard rejects owners separately.
	GetVisibleShared(ctx context.Context, wishlistID, userID uuid.UUID) (*model.Wishlist, error)

	// GetPublic returns the wishlist only when its share status is
	// public.
	GetPublic(ctx context.Context, wishlistID uuid.UUID) (*model.Wishlist, error)

	// ListSharedWith returns wishlists shared with the user plus public
	// wishlists the user has saved, excluding any the user owns.
	ListSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Wishlist, error)

	// DeleteAsOwner removes the caller from the owner set. The creator
	// deletes the wishlist outright; a non-creator owner only removes
	// their membership, and the wishlist is deleted in the same
	// transaction when no owner remains. Returns whether the wishlist
	// itself was deleted.
	DeleteAsOwner(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error)

	// AffectedUserIDs enumerates owners and shared-with users for
	// invalidation fan-out.
	AffectedUserIDs(ctx context.Context, wishlistID uuid.UUID) ([]uuid.UUID, error)
}
