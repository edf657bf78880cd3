package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
)

type wishlistRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB, logger *zap.Logger) repository.WishlistRepository {
	return &wishlistRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the wishlist together with its creator owner row; both
// commit or both roll back.
func (r *wishlistRepository) Create(ctx context.Context, wishlist *model.Wishlist, creator uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(wishlist).Error; err != nil {
			return fmt.Errorf("failed to create wishlist: %w", err)
		}

		owner := model.WishlistOwner{
			WishlistID: wishlist.ID,
			UserID:     creator,
			Role:       model.OwnerRoleCreator,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return fmt.Errorf("failed to create creator membership: %w", err)
		}

		return nil
	})
}

func (r *wishlistRepository) Update(ctx context.Context, wishlist *model.Wishlist) error {
	err := r.db.WithContext(ctx).
		Model(&model.Wishlist{}).
		Where("id = ?", wishlist.ID).
		Updates(map[string]interface{}{
			"title":        wishlist.Title,
			"description":  wishlist.Description,
			"share_status": wishlist.ShareStatus,
		}).Error
	if err != nil {
		r.logger.Error("Failed to update wishlist",
			zap.String("wishlist_id", wishlist.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to update wishlist: %w", err)
	}
	return nil
}

func (r *wishlistRepository) ListOwned(ctx context.Context, userID uuid.UUID) ([]model.Wishlist, error) {
	var wishlists []model.Wishlist

	err := r.db.WithContext(ctx).
		Joins("JOIN wishlist_owners ON wishlist_owners.wishlist_id = wishlists.id").
		Where("wishlist_owners.user_id = ?", userID).
		Order("wishlists.id").
		Find(&wishlists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owned wishlists: %w", err)
	}

	return wishlists, nil
}

// GetOwned is scoped to "wishlists where I am an owner"; a non-owner's
// lookup simply finds no membership row.
func (r *wishlistRepository) GetOwned(ctx context.Context, wishlistID, userID uuid.UUID) (*model.Wishlist, *model.WishlistOwner, error) {
	var owner model.WishlistOwner
	err := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get owner membership: %w", err)
	}

	var wishlist model.Wishlist
	err = r.db.WithContext(ctx).
		Where("id = ?", wishlistID).
		First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wishlist, &owner, nil
}

func (r *wishlistRepository) GetVisibleShared(ctx context.Context, wishlistID, userID uuid.UUID) (*model.Wishlist, error) {
	var wishlist model.Wishlist

	err := r.db.WithContext(ctx).
		Where(`id = ? AND (share_status = ?
			OR (share_status = ? AND EXISTS (
				SELECT 1 FROM wishlist_shared_with sw
				WHERE sw.wishlist_id = wishlists.id AND sw.user_id = ?)))`,
			wishlistID, model.ShareStatusPublic, model.ShareStatusShared, userID).
		First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shared wishlist: %w", err)
	}

	return &wishlist, nil
}

func (r *wishlistRepository) GetPublic(ctx context.Context, wishlistID uuid.UUID) (*model.Wishlist, error) {
	var wishlist model.Wishlist

	err := r.db.WithContext(ctx).
		Where("id = ? AND share_status = ?", wishlistID, model.ShareStatusPublic).
		First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get public wishlist: %w", err)
	}

	return &wishlist, nil
}

// ListSharedWith surfaces "shared with me": explicit grants on shared
// wishlists plus saved public wishlists, never the caller's own.
func (r *wishlistRepository) ListSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Wishlist, error) {
	var wishlists []model.Wishlist

	err := r.db.WithContext(ctx).
		Where(`((share_status = ? AND EXISTS (
			SELECT 1 FROM wishlist_shared_with sw
			WHERE sw.wishlist_id = wishlists.id AND sw.user_id = ?))
		OR (share_status = ? AND EXISTS (
			SELECT 1 FROM wishlist_public_saved_shares ps
			WHERE ps.wishlist_id = wishlists.id AND ps.user_id = ?)))
		AND NOT EXISTS (
			SELECT 1 FROM wishlist_owners o
			WHERE o.wishlist_id = wishlists.id AND o.user_id = ?)`,
			model.ShareStatusShared, userID, model.ShareStatusPublic, userID, userID).
		Order("wishlists.id").
		Find(&wishlists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shared wishlists: %w", err)
	}

	return wishlists, nil
}

// DeleteAsOwner enforces the at-least-one-owner invariant under a row
// lock on the membership rows: the creator deletes the wishlist
// outright, a non-creator owner removes their own membership, and the
// wishlist goes with them when nobody is left.
func (r *wishlistRepository) DeleteAsOwner(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	deleted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owners []model.WishlistOwner
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wishlist_id = ?", wishlistID).
			Find(&owners).Error
		if err != nil {
			return fmt.Errorf("failed to lock owner rows: %w", err)
		}

		var caller *model.WishlistOwner
		for i := range owners {
			if owners[i].UserID == userID {
				caller = &owners[i]
				break
			}
		}
		if caller == nil {
			// The membership disappeared between guard and mutation.
			return nil
		}

		if caller.Role == model.OwnerRoleCreator {
			if err := tx.Where("id = ?", wishlistID).Delete(&model.Wishlist{}).Error; err != nil {
				return fmt.Errorf("failed to delete wishlist: %w", err)
			}
			deleted = true
			return nil
		}

		err = tx.Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
			Delete(&model.WishlistOwner{}).Error
		if err != nil {
			return fmt.Errorf("failed to remove owner membership: %w", err)
		}

		if len(owners) <= 1 {
			if err := tx.Where("id = ?", wishlistID).Delete(&model.Wishlist{}).Error; err != nil {
				return fmt.Errorf("failed to delete orphaned wishlist: %w", err)
			}
			deleted = true
		}

		return nil
	})
	if err != nil {
		r.logger.Error("Failed to delete wishlist as owner",
			zap.String("wishlist_id", wishlistID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return false, err
	}

	return deleted, nil
}

func (r *wishlistRepository) AffectedUserIDs(ctx context.Context, wishlistID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := r.db.WithContext(ctx).
		Raw(`SELECT user_id FROM wishlist_owners WHERE wishlist_id = ?
			UNION
			SELECT user_id FROM wishlist_shared_with WHERE wishlist_id = ?`,
			wishlistID, wishlistID).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate affected users: %w", err)
	}

	return ids, nil
}
