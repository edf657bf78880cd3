package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wishbeam/wishbeam/internal/domain/model"
)

// ItemRepository persists wishlist items. Lock, Unlock and SetStatus
// run the state transition inside a single transaction that row-locks
// the item before re-reading its state, so concurrent attempts
// serialize and the loser observes the already-applied transition.
type ItemRepository interface {
	List(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistItem, error)

	// ListActive returns only status=active items, as served to public
	// readers.
	ListActive(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistItem, error)

	// Get returns the item scoped to its wishlist, or nil when absent.
	Get(ctx context.Context, wishlistID, itemID uuid.UUID) (*model.WishlistItem, error)

	Create(ctx context.Context, item *model.WishlistItem) error

	Update(ctx context.Context, item *model.WishlistItem) error

	// Delete removes the item and reports whether it existed.
	Delete(ctx context.Context, wishlistID, itemID uuid.UUID) (bool, error)

	Lock(ctx context.Context, wishlistID, itemID, userID uuid.UUID) (*model.WishlistItem, error)

	Unlock(ctx context.Context, wishlistID, itemID, userID uuid.UUID) (*model.WishlistItem, error)

	SetStatus(ctx context.Context, wishlistID, itemID uuid.UUID, status model.ItemStatus) (*model.WishlistItem, error)
}
