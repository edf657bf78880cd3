package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wishbeam/wishbeam/internal/domain/model"
)

// UserRepository reads the user reference data owned by the external
// identity provider. GetByEmail and GetByID return nil when no user
// exists.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Upsert inserts the user or refreshes email and display name from
	// the verified session claims.
	Upsert(ctx context.Context, user *model.User) error
}
