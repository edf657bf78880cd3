package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/access"
	"github.com/wishbeam/wishbeam/internal/middleware/auth"
	"github.com/wishbeam/wishbeam/internal/usecase"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// SharedHandler handles the shared tier: wishlists the caller can see
// because they were shared with them or saved from a public link.
// Owners are rejected here and use the owned surface instead.
type SharedHandler struct {
	logger    *zap.Logger
	authorize *access.Authorizer
	wishlists *usecase.WishlistService
	items     *usecase.ItemService
}

// NewSharedHandler creates a new shared tier handler instance
func NewSharedHandler(
	logger *zap.Logger,
	authorize *access.Authorizer,
	wishlists *usecase.WishlistService,
	items *usecase.ItemService,
) *SharedHandler {
	return &SharedHandler{
		logger:    logger,
		authorize: authorize,
		wishlists: wishlists,
		items:     items,
	}
}

// List handles GET /api/v1/shared/wishlists
func (h *SharedHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	wishlists, err := h.wishlists.ListSharedWithMe(c.Request().Context(), user.UserID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, wishlists)
}

// Get handles GET /api/v1/shared/wishlists/:wishlistId
func (h *SharedHandler) Get(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Shared(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, h.wishlists.GetShared(view))
}

// ListItems handles GET /api/v1/shared/wishlists/:wishlistId/items
func (h *SharedHandler) ListItems(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Shared(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	items, err := h.items.ListShared(c.Request().Context(), view)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, items)
}

// LockItem handles POST /api/v1/shared/wishlists/:wishlistId/items/:itemId/lock
func (h *SharedHandler) LockItem(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	itemID, err := itemParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Shared(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	item, err := h.items.Lock(c.Request().Context(), view, itemID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// UnlockItem handles POST /api/v1/shared/wishlists/:wishlistId/items/:itemId/unlock
func (h *SharedHandler) UnlockItem(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	itemID, err := itemParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Shared(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	item, err := h.items.Unlock(c.Request().Context(), view, itemID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// Leave handles DELETE /api/v1/shared/wishlists/:wishlistId
func (h *SharedHandler) Leave(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Shared(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	if err := h.wishlists.LeaveShared(c.Request().Context(), view); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
