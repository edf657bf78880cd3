package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wishbeam/wishbeam/internal/adapter/repository"
	domainRepo "github.com/wishbeam/wishbeam/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Wishlist domainRepo.WishlistRepository
	Owner    domainRepo.OwnerRepository
	Share    domainRepo.ShareRepository
	Item     domainRepo.ItemRepository
	User     domainRepo.UserRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Wishlist: repository.NewWishlistRepository(db, logger),
		Owner:    repository.NewOwnerRepository(db, logger),
		Share:    repository.NewShareRepository(db, logger),
		Item:     repository.NewItemRepository(db, logger),
		User:     repository.NewUserRepository(db, logger),
	}
}
