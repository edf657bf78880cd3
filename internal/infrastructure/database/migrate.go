package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wishbeam/wishbeam/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	// Foreign keys stay enabled so wishlist deletion cascades to
	// memberships, grants and items at the database level.
	err := db.AutoMigrate(
		&model.User{},
		&model.Wishlist{},
		&model.WishlistOwner{},
		&model.WishlistSharedWith{},
		&model.WishlistPublicSavedShare{},
		&model.WishlistItem{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes that GORM doesn't handle
// automatically
func createCustomIndexes(db *gorm.DB) error {
	// Exactly one creator per wishlist.
	err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_creator_per_wishlist
		ON wishlist_owners (wishlist_id) WHERE role = 'creator'`).Error
	if err != nil {
		return err
	}

	// Speeds up the shared-with-me listing.
	err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_shared_with_user
		ON wishlist_shared_with (user_id)`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_public_saved_shares_user
		ON wishlist_public_saved_shares (user_id)`).Error
	if err != nil {
		return err
	}

	return nil
}
