package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "github.com/wishbeam/wishbeam/internal/domain/errors"
	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
)

type itemRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewItemRepository creates a new wishlist item repository
func NewItemRepository(db *gorm.DB, logger *zap.Logger) repository.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) List(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistItem, error) {
	var items []model.WishlistItem

	err := r.db.WithContext(ctx).
		Preload("LockedUser").
		Where("wishlist_id = ?", wishlistID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

func (r *itemRepository) ListActive(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistItem, error) {
	var items []model.WishlistItem

	err := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND status = ?", wishlistID, model.ItemStatusActive).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active items: %w", err)
	}

	return items, nil
}

func (r *itemRepository) Get(ctx context.Context, wishlistID, itemID uuid.UUID) (*model.WishlistItem, error) {
	var item model.WishlistItem

	err := r.db.WithContext(ctx).
		Preload("LockedUser").
		Where("wishlist_id = ? AND id = ?", wishlistID, itemID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		r.logger.Error("Failed to create item",
			zap.String("wishlist_id", item.WishlistID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *model.WishlistItem) error {
	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":           item.Title,
			"description":     item.Description,
			"links":           item.Links,
			"estimated_price": item.EstimatedPrice,
		}).Error
	if err != nil {
		r.logger.Error("Failed to update item",
			zap.String("item_id", item.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, wishlistID, itemID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND id = ?", wishlistID, itemID).
		Delete(&model.WishlistItem{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete item: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *itemRepository) Lock(ctx context.Context, wishlistID, itemID, userID uuid.UUID) (*model.WishlistItem, error) {
	return r.transition(ctx, wishlistID, itemID, func(item *model.WishlistItem) error {
		return item.ApplyLock(userID, time.Now())
	})
}

func (r *itemRepository) Unlock(ctx context.Context, wishlistID, itemID, userID uuid.UUID) (*model.WishlistItem, error) {
	return r.transition(ctx, wishlistID, itemID, func(item *model.WishlistItem) error {
		return item.ApplyUnlock(userID, time.Now())
	})
}

func (r *itemRepository) SetStatus(ctx context.Context, wishlistID, itemID uuid.UUID, status model.ItemStatus) (*model.WishlistItem, error) {
	return r.transition(ctx, wishlistID, itemID, func(item *model.WishlistItem) error {
		return item.ApplyStatus(status, time.Now())
	})
}

// transition re-reads the item under a FOR UPDATE row lock, applies the
// state change and persists it, all in one transaction. Concurrent
// attempts serialize on the row lock; whoever arrives second sees the
// committed state and the transition rejects it there.
func (r *itemRepository) transition(ctx context.Context, wishlistID, itemID uuid.UUID, apply func(*model.WishlistItem) error) (*model.WishlistItem, error) {
	var item model.WishlistItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wishlist_id = ? AND id = ?", wishlistID, itemID).
			First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrItemNotFound
			}
			return fmt.Errorf("failed to lock item row: %w", err)
		}

		if err := apply(&item); err != nil {
			return err
		}

		return tx.Model(&model.WishlistItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"status":          item.Status,
				"locked_user_id":  item.LockedUserID,
				"lock_changed_at": item.LockChangedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}
