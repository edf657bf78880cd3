package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
)

type ownerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOwnerRepository creates a new owner membership repository
func NewOwnerRepository(db *gorm.DB, logger *zap.Logger) repository.OwnerRepository {
	return &ownerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ownerRepository) List(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistOwner, error) {
	var owners []model.WishlistOwner

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("wishlist_id = ?", wishlistID).
		Order("created_at").
		Find(&owners).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	return owners, nil
}

func (r *ownerRepository) IsOwner(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.WishlistOwner{}).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}

	return count > 0, nil
}

func (r *ownerRepository) Add(ctx context.Context, wishlistID, userID uuid.UUID, role model.OwnerRole) error {
	owner := model.WishlistOwner{
		WishlistID: wishlistID,
		UserID:     userID,
		Role:       role,
	}

	if err := r.db.WithContext(ctx).Create(&owner).Error; err != nil {
		r.logger.Error("Failed to add owner",
			zap.String("wishlist_id", wishlistID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to add owner: %w", err)
	}

	return nil
}

func (r *ownerRepository) Remove(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		Delete(&model.WishlistOwner{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove owner: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
