package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/wishbeam/wishbeam/internal/access"
	"github.com/wishbeam/wishbeam/internal/domain/entity"
	domainerrors "github.com/wishbeam/wishbeam/internal/domain/errors"
	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// ItemInput carries the mutable item fields for create and update.
// Lock fields and status are never set through this path.
type ItemInput struct {
	Title          string
	Description    string
	Links          []string
	EstimatedPrice *string
}

// ItemService implements item CRUD for owners, the advisory lock
// protocol for shared viewers, and the read-only public projection.
type ItemService struct {
	items     repository.ItemRepository
	wishlists repository.WishlistRepository
	bus       *InvalidationBus
	logger    *zap.Logger
}

func NewItemService(
	items repository.ItemRepository,
	wishlists repository.WishlistRepository,
	bus *InvalidationBus,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:     items,
		wishlists: wishlists,
		bus:       bus,
		logger:    logger,
	}
}

// ListOwned returns every item with the raw lock holder attached.
func (s *ItemService) ListOwned(ctx context.Context, view *access.View) ([]entity.OwnedItem, error) {
	items, err := s.items.List(ctx, view.Wishlist.ID)
	if err != nil {
		return nil, errors.Internal("failed to list items", err)
	}

	result := make([]entity.OwnedItem, 0, len(items))
	for i := range items {
		result = append(result, entity.NewOwnedItem(&items[i], view.Viewer))
	}
	return result, nil
}

// Create inserts a new item into the wishlist.
func (s *ItemService) Create(ctx context.Context, view *access.View, input ItemInput) (*entity.OwnedItem, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Internal("failed to generate item id", err)
	}

	item := &model.WishlistItem{
		ID:             id,
		WishlistID:     view.Wishlist.ID,
		Title:          input.Title,
		Description:    input.Description,
		Links:          datatypes.NewJSONSlice(input.Links),
		EstimatedPrice: input.EstimatedPrice,
		Status:         model.ItemStatusActive,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, errors.Internal("failed to create item", err)
	}

	s.publishData(ctx, view.Wishlist.ID)

	created := entity.NewOwnedItem(item, view.Viewer)
	return &created, nil
}

// Update mutates the content fields of an item. Lock state and status
// are untouched; those move only through Lock, Unlock and SetStatus.
func (s *ItemService) Update(ctx context.Context, view *access.View, itemID uuid.UUID, input ItemInput) (*entity.OwnedItem, error) {
	item, err := s.items.Get(ctx, view.Wishlist.ID, itemID)
	if err != nil {
		return nil, errors.Internal("failed to load item", err)
	}
	if item == nil {
		return nil, domainerrors.ErrItemNotFound
	}

	item.Title = input.Title
	item.Description = input.Description
	item.Links = datatypes.NewJSONSlice(input.Links)
	item.EstimatedPrice = input.EstimatedPrice

	if err := s.items.Update(ctx, item); err != nil {
		return nil, errors.Internal("failed to update item", err)
	}

	s.publishData(ctx, view.Wishlist.ID)

	updated := entity.NewOwnedItem(item, view.Viewer)
	return &updated, nil
}

// Delete removes an item from the wishlist.
func (s *ItemService) Delete(ctx context.Context, view *access.View, itemID uuid.UUID) error {
	found, err := s.items.Delete(ctx, view.Wishlist.ID, itemID)
	if err != nil {
		return errors.Internal("failed to delete item", err)
	}
	if !found {
		return domainerrors.ErrItemNotFound
	}

	s.publishData(ctx, view.Wishlist.ID)
	return nil
}

// SetStatus transitions an item between active and archived. The
// repository runs the transition under a row lock; a no-op transition
// conflicts and any transition clears the lock.
func (s *ItemService) SetStatus(ctx context.Context, view *access.View, itemID uuid.UUID, status model.ItemStatus) (*entity.OwnedItem, error) {
	item, err := s.items.SetStatus(ctx, view.Wishlist.ID, itemID, status)
	if err != nil {
		return nil, err
	}

	s.publishData(ctx, view.Wishlist.ID)

	updated := entity.NewOwnedItem(item, view.Viewer)
	return &updated, nil
}

// ListShared serves the shared-tier projection: lock state relative to
// the viewer, never the raw holder.
func (s *ItemService) ListShared(ctx context.Context, view *access.View) ([]entity.Item, error) {
	items, err := s.items.List(ctx, view.Wishlist.ID)
	if err != nil {
		return nil, errors.Internal("failed to list items", err)
	}

	result := make([]entity.Item, 0, len(items))
	for i := range items {
		result = append(result, entity.NewItem(&items[i], view.Viewer))
	}
	return result, nil
}

// Lock claims an item for the viewer. Exactly one of two concurrent
// claims succeeds; the loser sees a conflict.
func (s *ItemService) Lock(ctx context.Context, view *access.View, itemID uuid.UUID) (*entity.Item, error) {
	item, err := s.items.Lock(ctx, view.Wishlist.ID, itemID, *view.Viewer)
	if err != nil {
		return nil, err
	}

	s.publishData(ctx, view.Wishlist.ID)

	locked := entity.NewItem(item, view.Viewer)
	return &locked, nil
}

// Unlock releases an item's lock.
func (s *ItemService) Unlock(ctx context.Context, view *access.View, itemID uuid.UUID) (*entity.Item, error) {
	item, err := s.items.Unlock(ctx, view.Wishlist.ID, itemID, *view.Viewer)
	if err != nil {
		return nil, err
	}

	s.publishData(ctx, view.Wishlist.ID)

	unlocked := entity.NewItem(item, view.Viewer)
	return &unlocked, nil
}

// ListPublic serves only active items. Anonymous viewers project every
// lock as unlocked or lockedByAnotherUser.
func (s *ItemService) ListPublic(ctx context.Context, view *access.View) ([]entity.Item, error) {
	items, err := s.items.ListActive(ctx, view.Wishlist.ID)
	if err != nil {
		return nil, errors.Internal("failed to list items", err)
	}

	result := make([]entity.Item, 0, len(items))
	for i := range items {
		result = append(result, entity.NewItem(&items[i], view.Viewer))
	}
	return result, nil
}

// publishData notifies every owner and shared user that the wishlist's
// detail view changed.
func (s *ItemService) publishData(ctx context.Context, wishlistID uuid.UUID) {
	affected, err := s.wishlists.AffectedUserIDs(ctx, wishlistID)
	if err != nil {
		errors.LogError(s.logger, err, "failed to enumerate affected users",
			zap.String("wishlist_id", wishlistID.String()))
		return
	}

	s.bus.PublishWishlistData(ctx, wishlistID, affected)
}
