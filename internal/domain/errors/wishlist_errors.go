package errors

import (
	apperrors "github.com/wishbeam/wishbeam/pkg/errors"
)

// Authorization failures deliberately collapse to "not found" when the
// caller has no visibility of the wishlist, so existence never leaks.
var (
	// ErrWishlistNotFound covers both a genuinely missing wishlist and
	// one the caller is not allowed to see.
	ErrWishlistNotFound = apperrors.NotFound("wishlist not found")

	// ErrNotCreator is returned when a non-creator owner attempts an
	// owner-management operation.
	ErrNotCreator = apperrors.Unauthorized("only the creator may manage owners")

	// ErrOwnerOnSharedTier is returned when an owner calls a shared-tier
	// procedure on their own wishlist.
	ErrOwnerOnSharedTier = apperrors.Unauthorized("owners must use the owned endpoints")

	// ErrUserNotFound is returned when an email does not resolve to a
	// known user.
	ErrUserNotFound = apperrors.Unprocessable("no user exists with that email")

	// ErrAlreadyOwner rejects duplicate owner membership.
	ErrAlreadyOwner = apperrors.Unprocessable("user is already an owner")

	// ErrRemoveSelfOwner rejects the creator removing themself through
	// the owner-management path.
	ErrRemoveSelfOwner = apperrors.Unprocessable("cannot remove yourself as an owner")

	// ErrNotAnOwner is returned when the removal target is not an owner.
	ErrNotAnOwner = apperrors.Unprocessable("user is not an owner")

	// ErrShareWithSelf rejects sharing a wishlist with yourself.
	ErrShareWithSelf = apperrors.Unprocessable("cannot share a wishlist with yourself")

	// ErrAlreadyShared rejects duplicate shared-with membership.
	ErrAlreadyShared = apperrors.Unprocessable("wishlist is already shared with that user")

	// ErrNotShared is returned when the removal target is not a shared
	// user.
	ErrNotShared = apperrors.Unprocessable("wishlist is not shared with that user")
)
