package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
)

type shareRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewShareRepository creates a new share grant repository
func NewShareRepository(db *gorm.DB, logger *zap.Logger) repository.ShareRepository {
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shareRepository) ListUsers(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistSharedWith, error) {
	var shares []model.WishlistSharedWith

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("wishlist_id = ?", wishlistID).
		Order("created_at").
		Find(&shares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shared users: %w", err)
	}

	return shares, nil
}

func (r *shareRepository) IsSharedWith(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.WishlistSharedWith{}).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check share grant: %w", err)
	}

	return count > 0, nil
}

func (r *shareRepository) Add(ctx context.Context, wishlistID, userID uuid.UUID) error {
	share := model.WishlistSharedWith{
		WishlistID: wishlistID,
		UserID:     userID,
	}

	if err := r.db.WithContext(ctx).Create(&share).Error; err != nil {
		r.logger.Error("Failed to add share grant",
			zap.String("wishlist_id", wishlistID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to add share grant: %w", err)
	}

	return nil
}

func (r *shareRepository) Remove(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		Delete(&model.WishlistSharedWith{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove share grant: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// SavePublicVisit is idempotent, so repeat visits never error on the
// composite key.
func (r *shareRepository) SavePublicVisit(ctx context.Context, wishlistID, userID uuid.UUID) error {
	saved := model.WishlistPublicSavedShare{
		WishlistID: wishlistID,
		UserID:     userID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&saved).Error
	if err != nil {
		return fmt.Errorf("failed to save public visit: %w", err)
	}

	return nil
}

func (r *shareRepository) RemovePublicSave(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		Delete(&model.WishlistPublicSavedShare{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove public save: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
