package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/access"
	domainerrors "github.com/wishbeam/wishbeam/internal/domain/errors"
	"github.com/wishbeam/wishbeam/internal/domain/model"
)

type wishlistServiceMocks struct {
	wishlists *MockWishlistRepository
	owners    *MockOwnerRepository
	shares    *MockShareRepository
	users     *MockUserRepository
	client    *MockPubSubClient
}

func newWishlistService() (*WishlistService, *wishlistServiceMocks) {
	m := &wishlistServiceMocks{
		wishlists: new(MockWishlistRepository),
		owners:    new(MockOwnerRepository),
		shares:    new(MockShareRepository),
		users:     new(MockUserRepository),
		client:    new(MockPubSubClient),
	}
	bus := NewInvalidationBus(m.client, zap.NewNop())
	service := NewWishlistService(m.wishlists, m.owners, m.shares, m.users, bus, zap.NewNop())
	return service, m
}

func ownedView(wishlist *model.Wishlist, viewer uuid.UUID, role model.OwnerRole) *access.View {
	return &access.View{
		Wishlist: wishlist,
		Role:     role,
		Viewer:   &viewer,
	}
}

func TestWishlistService_Create(t *testing.T) {
	viewer := uuid.New()
	service, m := newWishlistService()

	m.wishlists.On("Create", mock.Anything, mock.AnythingOfType("*model.Wishlist"), viewer).Return(nil)
	m.client.On("Publish", mock.Anything, SubjectFor(viewer), mock.Anything).Return(nil)

	created, err := service.Create(context.Background(), viewer, WishlistInput{
		Title:       "Birthday",
		Description: "Turning 30",
		ShareStatus: model.ShareStatusPrivate,
	})

	require.NoError(t, err)
	assert.Equal(t, "Birthday", created.Title)
	assert.Equal(t, string(model.OwnerRoleCreator), created.Role)
	assert.Len(t, created.ID, 22)
	m.client.AssertNumberOfCalls(t, "Publish", 1)
}

func TestWishlistService_Delete(t *testing.T) {
	viewer := uuid.New()
	other := uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New()}
	service, m := newWishlistService()

	// Fan-out targets are enumerated before the membership rows vanish.
	m.wishlists.On("AffectedUserIDs", mock.Anything, wishlist.ID).
		Return([]uuid.UUID{viewer, other}, nil)
	m.wishlists.On("DeleteAsOwner", mock.Anything, wishlist.ID, viewer).Return(true, nil)
	m.client.On("Publish", mock.Anything, SubjectFor(viewer), mock.Anything).Return(nil)
	m.client.On("Publish", mock.Anything, SubjectFor(other), mock.Anything).Return(nil)

	err := service.Delete(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator))

	require.NoError(t, err)
	m.client.AssertNumberOfCalls(t, "Publish", 2)
}

func TestWishlistService_AddOwner(t *testing.T) {
	viewer := uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New()}

	t.Run("unknown email is unprocessable", func(t *testing.T) {
		service, m := newWishlistService()
		m.users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := service.AddOwner(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator), "ghost@example.com")

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("existing owner is unprocessable", func(t *testing.T) {
		service, m := newWishlistService()
		target := &model.User{ID: uuid.New(), Email: "bob@example.com"}
		m.users.On("GetByEmail", mock.Anything, "bob@example.com").Return(target, nil)
		m.owners.On("IsOwner", mock.Anything, wishlist.ID, target.ID).Return(true, nil)

		_, err := service.AddOwner(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator), "bob@example.com")

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyOwner)
	})

	t.Run("adds with role owner and publishes", func(t *testing.T) {
		service, m := newWishlistService()
		target := &model.User{ID: uuid.New(), Email: "bob@example.com", DisplayName: "Bob"}
		m.users.On("GetByEmail", mock.Anything, "bob@example.com").Return(target, nil)
		m.owners.On("IsOwner", mock.Anything, wishlist.ID, target.ID).Return(false, nil)
		m.owners.On("Add", mock.Anything, wishlist.ID, target.ID, model.OwnerRoleOwner).Return(nil)
		m.wishlists.On("AffectedUserIDs", mock.Anything, wishlist.ID).
			Return([]uuid.UUID{viewer, target.ID}, nil)
		m.client.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		owner, err := service.AddOwner(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator), "bob@example.com")

		require.NoError(t, err)
		assert.Equal(t, string(model.OwnerRoleOwner), owner.Role)
		assert.Equal(t, "bob@example.com", owner.Email)
		m.owners.AssertExpectations(t)
	})
}

func TestWishlistService_RemoveOwner(t *testing.T) {
	viewer := uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New()}

	t.Run("removing yourself is unprocessable", func(t *testing.T) {
		service, _ := newWishlistService()

		err := service.RemoveOwner(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator), viewer)

		assert.ErrorIs(t, err, domainerrors.ErrRemoveSelfOwner)
	})

	t.Run("missing membership is unprocessable", func(t *testing.T) {
		service, m := newWishlistService()
		target := uuid.New()
		m.wishlists.On("AffectedUserIDs", mock.Anything, wishlist.ID).Return([]uuid.UUID{viewer}, nil)
		m.owners.On("Remove", mock.Anything, wishlist.ID, target).Return(false, nil)

		err := service.RemoveOwner(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator), target)

		assert.ErrorIs(t, err, domainerrors.ErrNotAnOwner)
	})

	t.Run("removes and notifies the former owner too", func(t *testing.T) {
		service, m := newWishlistService()
		target := uuid.New()
		m.wishlists.On("AffectedUserIDs", mock.Anything, wishlist.ID).
			Return([]uuid.UUID{viewer, target}, nil)
		m.owners.On("Remove", mock.Anything, wishlist.ID, target).Return(true, nil)
		m.client.On("Publish", mock.Anything, SubjectFor(viewer), mock.Anything).Return(nil)
		m.client.On("Publish", mock.Anything, SubjectFor(target), mock.Anything).Return(nil)

		err := service.RemoveOwner(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleCreator), target)

		require.NoError(t, err)
		m.client.AssertNumberOfCalls(t, "Publish", 2)
	})
}

func TestWishlistService_AddSharedUser(t *testing.T) {
	viewer := uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New(), ShareStatus: model.ShareStatusShared}

	t.Run("sharing with yourself is unprocessable", func(t *testing.T) {
		service, m := newWishlistService()
		self := &model.User{ID: viewer, Email: "me@example.com"}
		m.users.On("GetByEmail", mock.Anything, "me@example.com").Return(self, nil)

		_, err := service.AddSharedUser(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleOwner), "me@example.com")

		assert.ErrorIs(t, err, domainerrors.ErrShareWithSelf)
	})

	t.Run("duplicate grant is unprocessable", func(t *testing.T) {
		service, m := newWishlistService()
		target := &model.User{ID: uuid.New(), Email: "bob@example.com"}
		m.users.On("GetByEmail", mock.Anything, "bob@example.com").Return(target, nil)
		m.owners.On("IsOwner", mock.Anything, wishlist.ID, target.ID).Return(false, nil)
		m.shares.On("IsSharedWith", mock.Anything, wishlist.ID, target.ID).Return(true, nil)

		_, err := service.AddSharedUser(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleOwner), "bob@example.com")

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyShared)
	})

	t.Run("grants access and publishes", func(t *testing.T) {
		service, m := newWishlistService()
		target := &model.User{ID: uuid.New(), Email: "bob@example.com"}
		m.users.On("GetByEmail", mock.Anything, "bob@example.com").Return(target, nil)
		m.owners.On("IsOwner", mock.Anything, wishlist.ID, target.ID).Return(false, nil)
		m.shares.On("IsSharedWith", mock.Anything, wishlist.ID, target.ID).Return(false, nil)
		m.shares.On("Add", mock.Anything, wishlist.ID, target.ID).Return(nil)
		m.wishlists.On("AffectedUserIDs", mock.Anything, wishlist.ID).
			Return([]uuid.UUID{viewer, target.ID}, nil)
		m.client.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		shared, err := service.AddSharedUser(context.Background(), ownedView(wishlist, viewer, model.OwnerRoleOwner), "bob@example.com")

		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", shared.Email)
		m.shares.AssertExpectations(t)
	})
}

func TestWishlistService_LeaveShared(t *testing.T) {
	viewer := uuid.New()
	wishlist := &model.Wishlist{ID: uuid.New(), ShareStatus: model.ShareStatusPublic}

	t.Run("falls back to removing a public save", func(t *testing.T) {
		service, m := newWishlistService()
		m.shares.On("Remove", mock.Anything, wishlist.ID, viewer).Return(false, nil)
		m.shares.On("RemovePublicSave", mock.Anything, wishlist.ID, viewer).Return(true, nil)
		m.client.On("Publish", mock.Anything, SubjectFor(viewer), mock.Anything).Return(nil)

		err := service.LeaveShared(context.Background(), &access.View{Wishlist: wishlist, Viewer: &viewer})

		require.NoError(t, err)
	})

	t.Run("no grant at all is unprocessable", func(t *testing.T) {
		service, m := newWishlistService()
		m.shares.On("Remove", mock.Anything, wishlist.ID, viewer).Return(false, nil)
		m.shares.On("RemovePublicSave", mock.Anything, wishlist.ID, viewer).Return(false, nil)

		err := service.LeaveShared(context.Background(), &access.View{Wishlist: wishlist, Viewer: &viewer})

		assert.ErrorIs(t, err, domainerrors.ErrNotShared)
	})
}

func TestWishlistService_RecordPublicVisit(t *testing.T) {
	viewer := uuid.New()
	wishlistID := uuid.New()

	t.Run("owners are skipped", func(t *testing.T) {
		service, m := newWishlistService()
		m.owners.On("IsOwner", mock.Anything, wishlistID, viewer).Return(true, nil)

		err := service.RecordPublicVisit(context.Background(), wishlistID, viewer)

		require.NoError(t, err)
		m.shares.AssertNotCalled(t, "SavePublicVisit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("saves idempotently for visitors", func(t *testing.T) {
		service, m := newWishlistService()
		m.owners.On("IsOwner", mock.Anything, wishlistID, viewer).Return(false, nil)
		m.shares.On("SavePublicVisit", mock.Anything, wishlistID, viewer).Return(nil)
		m.client.On("Publish", mock.Anything, SubjectFor(viewer), mock.Anything).Return(nil)

		err := service.RecordPublicVisit(context.Background(), wishlistID, viewer)

		require.NoError(t, err)
		m.shares.AssertExpectations(t)
	})
}
