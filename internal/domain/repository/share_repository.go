package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wishbeam/wishbeam/internal/domain/model"
)

// ShareRepository manages shared-with grants and public-save records.
type ShareRepository interface {
	ListUsers(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistSharedWith, error)

	IsSharedWith(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error)

	Add(ctx context.Context, wishlistID, userID uuid.UUID) error

	// Remove deletes the grant and reports whether it existed.
	Remove(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error)

	// SavePublicVisit records that the user viewed a public wishlist.
	// Idempotent; repeat visits are no-ops.
	SavePublicVisit(ctx context.Context, wishlistID, userID uuid.UUID) error

	// RemovePublicSave drops the user's public-save record and reports
	// whether it existed.
	RemovePublicSave(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error)
}
