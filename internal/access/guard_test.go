package access

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainerrors "github.com/wishbeam/wishbeam/internal/domain/errors"
	"github.com/wishbeam/wishbeam/internal/domain/model"
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

func newAuthorizer(wishlists *MockWishlistRepository, owners *MockOwnerRepository) *Authorizer {
	return NewAuthorizer(wishlists, owners, zap.NewNop())
}

func TestOwnedGuard(t *testing.T) {
	viewer := uuid.New()
	wishlistID := uuid.New()

	t.Run("owner is admitted with their role", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlist := &model.Wishlist{ID: wishlistID, Title: "Birthday"}
		ownerRow := &model.WishlistOwner{WishlistID: wishlistID, UserID: viewer, Role: model.OwnerRoleOwner}
		wishlists.On("GetOwned", mock.Anything, wishlistID, viewer).Return(wishlist, ownerRow, nil)

		view, err := newAuthorizer(wishlists, owners).Owned(context.Background(), viewer, wishlistID)

		require.NoError(t, err)
		assert.Equal(t, wishlist, view.Wishlist)
		assert.Equal(t, model.OwnerRoleOwner, view.Role)
		require.NotNil(t, view.Viewer)
		assert.Equal(t, viewer, *view.Viewer)
	})

	t.Run("non-owner gets NotFound, not Forbidden", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlists.On("GetOwned", mock.Anything, wishlistID, viewer).Return(nil, nil, nil)

		_, err := newAuthorizer(wishlists, owners).Owned(context.Background(), viewer, wishlistID)

		assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
	})
}

func TestCreatorOnlyGuard(t *testing.T) {
	viewer := uuid.New()
	wishlistID := uuid.New()

	t.Run("creator is admitted", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlist := &model.Wishlist{ID: wishlistID}
		ownerRow := &model.WishlistOwner{WishlistID: wishlistID, UserID: viewer, Role: model.OwnerRoleCreator}
		wishlists.On("GetOwned", mock.Anything, wishlistID, viewer).Return(wishlist, ownerRow, nil)

		view, err := newAuthorizer(wishlists, owners).CreatorOnly(context.Background(), viewer, wishlistID)

		require.NoError(t, err)
		assert.Equal(t, model.OwnerRoleCreator, view.Role)
	})

	t.Run("non-creator owner gets Forbidden", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlist := &model.Wishlist{ID: wishlistID}
		ownerRow := &model.WishlistOwner{WishlistID: wishlistID, UserID: viewer, Role: model.OwnerRoleOwner}
		wishlists.On("GetOwned", mock.Anything, wishlistID, viewer).Return(wishlist, ownerRow, nil)

		_, err := newAuthorizer(wishlists, owners).CreatorOnly(context.Background(), viewer, wishlistID)

		assert.ErrorIs(t, err, domainerrors.ErrNotCreator)
	})

	t.Run("outsider still gets NotFound", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlists.On("GetOwned", mock.Anything, wishlistID, viewer).Return(nil, nil, nil)

		_, err := newAuthorizer(wishlists, owners).CreatorOnly(context.Background(), viewer, wishlistID)

		assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
	})
}

func TestSharedGuard(t *testing.T) {
	viewer := uuid.New()
	wishlistID := uuid.New()

	t.Run("shared user is admitted", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlist := &model.Wishlist{ID: wishlistID, ShareStatus: model.ShareStatusShared}
		owners.On("IsOwner", mock.Anything, wishlistID, viewer).Return(false, nil)
		wishlists.On("GetVisibleShared", mock.Anything, wishlistID, viewer).Return(wishlist, nil)

		view, err := newAuthorizer(wishlists, owners).Shared(context.Background(), viewer, wishlistID)

		require.NoError(t, err)
		assert.Equal(t, wishlist, view.Wishlist)
		assert.Equal(t, model.OwnerRole(""), view.Role)
	})

	t.Run("owner is rejected with Forbidden", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		owners.On("IsOwner", mock.Anything, wishlistID, viewer).Return(true, nil)

		_, err := newAuthorizer(wishlists, owners).Shared(context.Background(), viewer, wishlistID)

		assert.ErrorIs(t, err, domainerrors.ErrOwnerOnSharedTier)
		wishlists.AssertNotCalled(t, "GetVisibleShared", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invisible wishlist yields NotFound", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		owners.On("IsOwner", mock.Anything, wishlistID, viewer).Return(false, nil)
		wishlists.On("GetVisibleShared", mock.Anything, wishlistID, viewer).Return(nil, nil)

		_, err := newAuthorizer(wishlists, owners).Shared(context.Background(), viewer, wishlistID)

		assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
	})
}

func TestPublicGuard(t *testing.T) {
	wishlistID := uuid.New()

	t.Run("public wishlist is readable anonymously", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlist := &model.Wishlist{ID: wishlistID, ShareStatus: model.ShareStatusPublic}
		wishlists.On("GetPublic", mock.Anything, wishlistID).Return(wishlist, nil)

		view, err := newAuthorizer(wishlists, owners).Public(context.Background(), wishlistID)

		require.NoError(t, err)
		assert.Nil(t, view.Viewer)
	})

	t.Run("non-public wishlist yields NotFound", func(t *testing.T) {
		wishlists := new(MockWishlistRepository)
		owners := new(MockOwnerRepository)
		wishlists.On("GetPublic", mock.Anything, wishlistID).Return(nil, nil)

		_, err := newAuthorizer(wishlists, owners).Public(context.Background(), wishlistID)

		assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
	})
}
