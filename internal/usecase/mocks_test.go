package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/pkg/messaging"
)

// MockWishlistRepository is a mock implementation of repository.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Create(ctx context.Context, wishlist *model.Wishlist, creator uuid.UUID) error {
	args := m.Called(ctx, wishlist, creator)
	return args.Error(0)
}

func (m *MockWishlistRepository) Update(ctx context.Context, wishlist *model.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) ListOwned(ctx context.Context, userID uuid.UUID) ([]model.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) GetOwned(ctx context.Context, wishlistID, userID uuid.UUID) (*model.Wishlist, *model.WishlistOwner, error) {
	args := m.Called(ctx, wishlistID, userID)
	var wishlist *model.Wishlist
	var owner *model.WishlistOwner
	if args.Get(0) != nil {
		wishlist = args.Get(0).(*model.Wishlist)
	}
	if args.Get(1) != nil {
		owner = args.Get(1).(*model.WishlistOwner)
	}
	return wishlist, owner, args.Error(2)
}

func (m *MockWishlistRepository) GetVisibleShared(ctx context.Context, wishlistID, userID uuid.UUID) (*model.Wishlist, error) {
	args := m.Called(ctx, wishlistID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) GetPublic(ctx context.Context, wishlistID uuid.UUID) (*model.Wishlist, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) ListSharedWith(ctx context.Context, userID uuid.UUID) ([]model.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) DeleteAsOwner(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) AffectedUserIDs(ctx context.Context, wishlistID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockOwnerRepository is a mock implementation of repository.OwnerRepository
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) List(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistOwner, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistOwner), args.Error(1)
}

func (m *MockOwnerRepository) IsOwner(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerRepository) Add(ctx context.Context, wishlistID, userID uuid.UUID, role model.OwnerRole) error {
	args := m.Called(ctx, wishlistID, userID, role)
	return args.Error(0)
}

func (m *MockOwnerRepository) Remove(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, userID)
	return args.Bool(0), args.Error(1)
}

// MockShareRepository is a mock implementation of repository.ShareRepository
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) ListUsers(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistSharedWith, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistSharedWith), args.Error(1)
}

func (m *MockShareRepository) IsSharedWith(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareRepository) Add(ctx context.Context, wishlistID, userID uuid.UUID) error {
	args := m.Called(ctx, wishlistID, userID)
	return args.Error(0)
}

func (m *MockShareRepository) Remove(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareRepository) SavePublicVisit(ctx context.Context, wishlistID, userID uuid.UUID) error {
	args := m.Called(ctx, wishlistID, userID)
	return args.Error(0)
}

func (m *MockShareRepository) RemovePublicSave(ctx context.Context, wishlistID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, userID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockItemRepository is a mock implementation of repository.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) List(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistItem), args.Error(1)
}

func (m *MockItemRepository) ListActive(ctx context.Context, wishlistID uuid.UUID) ([]model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistItem), args.Error(1)
}

func (m *MockItemRepository) Get(ctx context.Context, wishlistID, itemID uuid.UUID) (*model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistItem), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *model.WishlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, wishlistID, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wishlistID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Lock(ctx context.Context, wishlistID, itemID, userID uuid.UUID) (*model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistItem), args.Error(1)
}

func (m *MockItemRepository) Unlock(ctx context.Context, wishlistID, itemID, userID uuid.UUID) (*model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistItem), args.Error(1)
}

func (m *MockItemRepository) SetStatus(ctx context.Context, wishlistID, itemID uuid.UUID, status model.ItemStatus) (*model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID, itemID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistItem), args.Error(1)
}

// MockPubSubClient is a mock implementation of messaging.PubSubClient
type MockPubSubClient struct {
	mock.Mock
}

func (m *MockPubSubClient) Publish(ctx context.Context, channel string, message interface{}) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}

func (m *MockPubSubClient) Subscribe(ctx context.Context, channel string) (<-chan messaging.Message, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan messaging.Message), args.Error(1)
}

func (m *MockPubSubClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
