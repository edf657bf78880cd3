// Package access classifies every request into exactly one access
// tier. Each RPC procedure binds exactly one guard; the guards return
// either an authorized view of the wishlist or a typed failure, so the
// authorization matrix stays a flat operation-by-tier table instead of
// scattered conditionals.
package access

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "github.com/wishbeam/wishbeam/internal/domain/errors"
	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// View is the context a guard hands to the operation it protects.
type View struct {
	Wishlist *model.Wishlist
	// Role is the caller's owner role; set only by the owned guard.
	Role model.OwnerRole
	// Viewer is nil for anonymous public reads.
	Viewer *uuid.UUID
}

// Authorizer implements the four access tiers over the scoped
// repository lookups.
type Authorizer struct {
	wishlists repository.WishlistRepository
	owners    repository.OwnerRepository
	logger    *zap.Logger
}

func NewAuthorizer(wishlists repository.WishlistRepository, owners repository.OwnerRepository, logger *zap.Logger) *Authorizer {
	return &Authorizer{
		wishlists: wishlists,
		owners:    owners,
		logger:    logger,
	}
}

// Owned admits callers that appear in the wishlist's owner set. A
// non-owner gets NotFound: the lookup is scoped to "wishlists where I
// am an owner", so a miss does not reveal whether the wishlist exists.
func (a *Authorizer) Owned(ctx context.Context, viewer uuid.UUID, wishlistID uuid.UUID) (*View, error) {
	wishlist, owner, err := a.wishlists.GetOwned(ctx, wishlistID, viewer)
	if err != nil {
		return nil, errors.Internal("failed to resolve owned wishlist", err)
	}
	if wishlist == nil {
		return nil, domainerrors.ErrWishlistNotFound
	}

	return &View{
		Wishlist: wishlist,
		Role:     owner.Role,
		Viewer:   &viewer,
	}, nil
}

// CreatorOnly composes on top of Owned and additionally requires the
// creator role. Existence is already established by the owned lookup,
// so the failure here is Forbidden rather than NotFound.
func (a *Authorizer) CreatorOnly(ctx context.Context, viewer uuid.UUID, wishlistID uuid.UUID) (*View, error) {
	view, err := a.Owned(ctx, viewer, wishlistID)
	if err != nil {
		return nil, err
	}

	if view.Role != model.OwnerRoleCreator {
		return nil, domainerrors.ErrNotCreator
	}

	return view, nil
}

// Shared admits non-owners on public wishlists and on shared wishlists
// the caller was granted access to. Owners are rejected with Forbidden
// so they cannot silently fall back to the reduced shared semantics.
func (a *Authorizer) Shared(ctx context.Context, viewer uuid.UUID, wishlistID uuid.UUID) (*View, error) {
	isOwner, err := a.owners.IsOwner(ctx, wishlistID, viewer)
	if err != nil {
		return nil, errors.Internal("failed to check ownership", err)
	}
	if isOwner {
		return nil, domainerrors.ErrOwnerOnSharedTier
	}

	wishlist, err := a.wishlists.GetVisibleShared(ctx, wishlistID, viewer)
	if err != nil {
		return nil, errors.Internal("failed to resolve shared wishlist", err)
	}
	if wishlist == nil {
		return nil, domainerrors.ErrWishlistNotFound
	}

	return &View{
		Wishlist: wishlist,
		Viewer:   &viewer,
	}, nil
}

// Public admits anyone, identity or not, on public wishlists only.
func (a *Authorizer) Public(ctx context.Context, wishlistID uuid.UUID) (*View, error) {
	wishlist, err := a.wishlists.GetPublic(ctx, wishlistID)
	if err != nil {
		return nil, errors.Internal("failed to resolve public wishlist", err)
	}
	if wishlist == nil {
		return nil, domainerrors.ErrWishlistNotFound
	}

	return &View{
		Wishlist: wishlist,
	}, nil
}
