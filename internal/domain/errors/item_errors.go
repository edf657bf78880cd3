package errors

import (
	apperrors "github.com/wishbeam/wishbeam/pkg/errors"
)

var (
	// ErrItemNotFound is returned when an item does not exist within
	// the resolved wishlist.
	ErrItemNotFound = apperrors.NotFound("item not found")

	// ErrItemLocked rejects a lock attempt on an item that already
	// holds a lock, including the caller's own.
	ErrItemLocked = apperrors.Conflict("item is already locked")

	// ErrItemNotLocked rejects an unlock attempt on an unlocked item.
	ErrItemNotLocked = apperrors.Conflict("item is not locked")

	// ErrStatusUnchanged rejects a status transition to the current
	// status.
	ErrStatusUnchanged = apperrors.Conflict("item already has that status")
)
