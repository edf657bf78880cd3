package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/access"
	"github.com/wishbeam/wishbeam/internal/domain/entity"
	domainerrors "github.com/wishbeam/wishbeam/internal/domain/errors"
	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// WishlistInput carries the mutable wishlist fields for create and
// update.
type WishlistInput struct {
	Title       string
	Description string
	ShareStatus model.ShareStatus
}

// WishlistService implements the ownership and sharing mutations.
// Callers resolve an access.View through the matching guard first;
// every mutation publishes invalidation to the affected users after it
// commits.
type WishlistService struct {
	wishlists repository.WishlistRepository
	owners    repository.OwnerRepository
	shares    repository.ShareRepository
	users     repository.UserRepository
	bus       *InvalidationBus
	logger    *zap.Logger
}

func NewWishlistService(
	wishlists repository.WishlistRepository,
	owners repository.OwnerRepository,
	shares repository.ShareRepository,
	users repository.UserRepository,
	bus *InvalidationBus,
	logger *zap.Logger,
) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		owners:    owners,
		shares:    shares,
		users:     users,
		bus:       bus,
		logger:    logger,
	}
}

// ListOwned returns every wishlist the viewer owns.
func (s *WishlistService) ListOwned(ctx context.Context, viewer uuid.UUID) ([]entity.Wishlist, error) {
	wishlists, err := s.wishlists.ListOwned(ctx, viewer)
	if err != nil {
		return nil, errors.Internal("failed to list wishlists", err)
	}

	result := make([]entity.Wishlist, 0, len(wishlists))
	for i := range wishlists {
		result = append(result, entity.NewWishlist(&wishlists[i]))
	}
	return result, nil
}

// Get shapes the already-authorized wishlist for the owner view.
func (s *WishlistService) Get(view *access.View) entity.OwnedWishlist {
	return entity.NewOwnedWishlist(view.Wishlist, view.Role)
}

// Create inserts a new wishlist with the viewer as creator. The
// wishlist row and the creator owner row commit in one transaction.
func (s *WishlistService) Create(ctx context.Context, viewer uuid.UUID, input WishlistInput) (*entity.OwnedWishlist, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Internal("failed to generate wishlist id", err)
	}

	wishlist := &model.Wishlist{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		ShareStatus: input.ShareStatus,
	}

	if err := s.wishlists.Create(ctx, wishlist, viewer); err != nil {
		return nil, errors.Internal("failed to create wishlist", err)
	}

	s.bus.PublishWishlists(ctx, []uuid.UUID{viewer})

	created := entity.NewOwnedWishlist(wishlist, model.OwnerRoleCreator)
	return &created, nil
}

// Update mutates title, description and share status. Changing the
// share status does not revoke already-cached client state; the
// invalidation event converges clients to the new rules.
func (s *WishlistService) Update(ctx context.Context, view *access.View, input WishlistInput) (*entity.OwnedWishlist, error) {
	wishlist := view.Wishlist
	wishlist.Title = input.Title
	wishlist.Description = input.Description
	wishlist.ShareStatus = input.ShareStatus

	if err := s.wishlists.Update(ctx, wishlist); err != nil {
		return nil, errors.Internal("failed to update wishlist", err)
	}

	s.publishAll(ctx, wishlist.ID)

	updated := entity.NewOwnedWishlist(wishlist, view.Role)
	return &updated, nil
}

// Delete removes the viewer from the owner set. The creator deletes
// the wishlist outright; the last remaining owner's removal deletes it
// too, keeping the at-least-one-owner invariant.
func (s *WishlistService) Delete(ctx context.Context, view *access.View) error {
	wishlistID := view.Wishlist.ID

	// Enumerate before deleting; afterwards the membership rows are gone.
	affected, err := s.wishlists.AffectedUserIDs(ctx, wishlistID)
	if err != nil {
		return errors.Internal("failed to enumerate affected users", err)
	}

	deleted, err := s.wishlists.DeleteAsOwner(ctx, wishlistID, *view.Viewer)
	if err != nil {
		return errors.Internal("failed to delete wishlist", err)
	}

	s.logger.Info("wishlist deleted",
		zap.String("wishlist_id", wishlistID.String()),
		zap.Bool("wishlist_removed", deleted))

	s.bus.PublishWishlists(ctx, affected)
	return nil
}

// ListOwners returns the owner memberships of the wishlist.
func (s *WishlistService) ListOwners(ctx context.Context, view *access.View) ([]entity.Owner, error) {
	ownerRows, err := s.owners.List(ctx, view.Wishlist.ID)
	if err != nil {
		return nil, errors.Internal("failed to list owners", err)
	}

	result := make([]entity.Owner, 0, len(ownerRows))
	for i := range ownerRows {
		result = append(result, entity.NewOwner(&ownerRows[i]))
	}
	return result, nil
}

// AddOwner resolves the target by email and adds them with role owner.
// Creator-only; callers pass a view from the creator guard.
func (s *WishlistService) AddOwner(ctx context.Context, view *access.View, email string) (*entity.Owner, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Internal("failed to resolve user", err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	wishlistID := view.Wishlist.ID

	isOwner, err := s.owners.IsOwner(ctx, wishlistID, user.ID)
	if err != nil {
		return nil, errors.Internal("failed to check ownership", err)
	}
	if isOwner {
		return nil, domainerrors.ErrAlreadyOwner
	}

	if err := s.owners.Add(ctx, wishlistID, user.ID, model.OwnerRoleOwner); err != nil {
		return nil, errors.Internal("failed to add owner", err)
	}

	s.publishAll(ctx, wishlistID)

	owner := entity.Owner{
		User: entity.NewUser(user),
		Role: string(model.OwnerRoleOwner),
	}
	return &owner, nil
}

// RemoveOwner removes another owner's membership. Creator-only; the
// creator cannot remove themself through this path.
func (s *WishlistService) RemoveOwner(ctx context.Context, view *access.View, target uuid.UUID) error {
	if target == *view.Viewer {
		return domainerrors.ErrRemoveSelfOwner
	}

	wishlistID := view.Wishlist.ID

	affected, err := s.wishlists.AffectedUserIDs(ctx, wishlistID)
	if err != nil {
		return errors.Internal("failed to enumerate affected users", err)
	}

	found, err := s.owners.Remove(ctx, wishlistID, target)
	if err != nil {
		return errors.Internal("failed to remove owner", err)
	}
	if !found {
		return domainerrors.ErrNotAnOwner
	}

	s.bus.PublishWishlists(ctx, affected)
	return nil
}

// ListSharedUsers returns the shared-with grants of the wishlist.
func (s *WishlistService) ListSharedUsers(ctx context.Context, view *access.View) ([]entity.User, error) {
	rows, err := s.shares.ListUsers(ctx, view.Wishlist.ID)
	if err != nil {
		return nil, errors.Internal("failed to list shared users", err)
	}

	result := make([]entity.User, 0, len(rows))
	for i := range rows {
		result = append(result, entity.NewUser(&rows[i].User))
	}
	return result, nil
}

// AddSharedUser grants a user access to a shared wishlist. Self-shares
// and duplicates are rejected; owners already have more access than a
// grant would give them.
func (s *WishlistService) AddSharedUser(ctx context.Context, view *access.View, email string) (*entity.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Internal("failed to resolve user", err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	if user.ID == *view.Viewer {
		return nil, domainerrors.ErrShareWithSelf
	}

	wishlistID := view.Wishlist.ID

	isOwner, err := s.owners.IsOwner(ctx, wishlistID, user.ID)
	if err != nil {
		return nil, errors.Internal("failed to check ownership", err)
	}
	if isOwner {
		return nil, domainerrors.ErrAlreadyOwner
	}

	isShared, err := s.shares.IsSharedWith(ctx, wishlistID, user.ID)
	if err != nil {
		return nil, errors.Internal("failed to check share", err)
	}
	if isShared {
		return nil, domainerrors.ErrAlreadyShared
	}

	if err := s.shares.Add(ctx, wishlistID, user.ID); err != nil {
		return nil, errors.Internal("failed to add shared user", err)
	}

	s.publishAll(ctx, wishlistID)

	shared := entity.NewUser(user)
	return &shared, nil
}

// RemoveSharedUser revokes a grant. Owner-tier operation; it never
// touches owner rows.
func (s *WishlistService) RemoveSharedUser(ctx context.Context, view *access.View, target uuid.UUID) error {
	wishlistID := view.Wishlist.ID

	affected, err := s.wishlists.AffectedUserIDs(ctx, wishlistID)
	if err != nil {
		return errors.Internal("failed to enumerate affected users", err)
	}

	found, err := s.shares.Remove(ctx, wishlistID, target)
	if err != nil {
		return errors.Internal("failed to remove shared user", err)
	}
	if !found {
		return domainerrors.ErrNotShared
	}

	s.bus.PublishWishlists(ctx, affected)
	return nil
}

// ListSharedWithMe returns wishlists shared with the viewer plus
// public wishlists the viewer saved.
func (s *WishlistService) ListSharedWithMe(ctx context.Context, viewer uuid.UUID) ([]entity.Wishlist, error) {
	wishlists, err := s.wishlists.ListSharedWith(ctx, viewer)
	if err != nil {
		return nil, errors.Internal("failed to list shared wishlists", err)
	}

	result := make([]entity.Wishlist, 0, len(wishlists))
	for i := range wishlists {
		result = append(result, entity.NewWishlist(&wishlists[i]))
	}
	return result, nil
}

// GetShared shapes the already-authorized wishlist for a shared
// viewer.
func (s *WishlistService) GetShared(view *access.View) entity.Wishlist {
	return entity.NewWishlist(view.Wishlist)
}

// LeaveShared removes the viewer's own access to a shared or saved
// public wishlist.
func (s *WishlistService) LeaveShared(ctx context.Context, view *access.View) error {
	wishlistID := view.Wishlist.ID
	viewer := *view.Viewer

	found, err := s.shares.Remove(ctx, wishlistID, viewer)
	if err != nil {
		return errors.Internal("failed to leave wishlist", err)
	}
	if !found {
		if found, err = s.shares.RemovePublicSave(ctx, wishlistID, viewer); err != nil {
			return errors.Internal("failed to remove saved wishlist", err)
		}
	}
	if !found {
		return domainerrors.ErrNotShared
	}

	s.bus.PublishWishlists(ctx, []uuid.UUID{viewer})
	return nil
}

// RecordPublicVisit idempotently saves a public wishlist for a signed
// in viewer so it shows up under "shared with me". Owners are skipped;
// their own lists already do.
func (s *WishlistService) RecordPublicVisit(ctx context.Context, wishlistID, viewer uuid.UUID) error {
	isOwner, err := s.owners.IsOwner(ctx, wishlistID, viewer)
	if err != nil {
		return errors.Internal("failed to check ownership", err)
	}
	if isOwner {
		return nil
	}

	if err := s.shares.SavePublicVisit(ctx, wishlistID, viewer); err != nil {
		return errors.Internal("failed to save public visit", err)
	}

	s.bus.PublishWishlists(ctx, []uuid.UUID{viewer})
	return nil
}

// publishAll sends both the list-level and the detail-level
// invalidation for one wishlist to every affected user.
func (s *WishlistService) publishAll(ctx context.Context, wishlistID uuid.UUID) {
	affected, err := s.wishlists.AffectedUserIDs(ctx, wishlistID)
	if err != nil {
		errors.LogError(s.logger, err, "failed to enumerate affected users",
			zap.String("wishlist_id", wishlistID.String()))
		return
	}

	s.bus.PublishWishlists(ctx, affected)
	s.bus.PublishWishlistData(ctx, wishlistID, affected)
}
