package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/access"
	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/middleware/auth"
	"github.com/wishbeam/wishbeam/internal/usecase"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// WishlistHandler handles the owned wishlist surface: CRUD plus owner
// and shared-with management.
type WishlistHandler struct {
	logger    *zap.Logger
	authorize *access.Authorizer
	wishlists *usecase.WishlistService
}

// NewWishlistHandler creates a new wishlist handler instance
func NewWishlistHandler(
	logger *zap.Logger,
	authorize *access.Authorizer,
	wishlists *usecase.WishlistService,
) *WishlistHandler {
	return &WishlistHandler{
		logger:    logger,
		authorize: authorize,
		wishlists: wishlists,
	}
}

// WishlistRequest is the create/update payload.
type WishlistRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	ShareStatus string `json:"shareStatus" validate:"required,oneof=private shared public"`
}

// EmailRequest identifies a user to add by their account email.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// List handles GET /api/v1/wishlists
func (h *WishlistHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	wishlists, err := h.wishlists.ListOwned(c.Request().Context(), user.UserID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, wishlists)
}

// Create handles POST /api/v1/wishlists
func (h *WishlistHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument(err.Error()))
	}

	wishlist, err := h.wishlists.Create(c.Request().Context(), user.UserID, usecase.WishlistInput{
		Title:       req.Title,
		Description: req.Description,
		ShareStatus: model.ShareStatus(req.ShareStatus),
	})
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, wishlist)
}

// Get handles GET /api/v1/wishlists/:wishlistId
func (h *WishlistHandler) Get(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, h.wishlists.Get(view))
}

// Update handles PUT /api/v1/wishlists/:wishlistId
func (h *WishlistHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument(err.Error()))
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	wishlist, err := h.wishlists.Update(c.Request().Context(), view, usecase.WishlistInput{
		Title:       req.Title,
		Description: req.Description,
		ShareStatus: model.ShareStatus(req.ShareStatus),
	})
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, wishlist)
}

// Delete handles DELETE /api/v1/wishlists/:wishlistId
func (h *WishlistHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	if err := h.wishlists.Delete(c.Request().Context(), view); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOwners handles GET /api/v1/wishlists/:wishlistId/owners
func (h *WishlistHandler) ListOwners(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	owners, err := h.wishlists.ListOwners(c.Request().Context(), view)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, owners)
}

// AddOwner handles POST /api/v1/wishlists/:wishlistId/owners
func (h *WishlistHandler) AddOwner(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument(err.Error()))
	}

	view, err := h.authorize.CreatorOnly(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	owner, err := h.wishlists.AddOwner(c.Request().Context(), view, req.Email)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, owner)
}

// RemoveOwner handles DELETE /api/v1/wishlists/:wishlistId/owners/:userId
func (h *WishlistHandler) RemoveOwner(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	target, err := userParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.CreatorOnly(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	if err := h.wishlists.RemoveOwner(c.Request().Context(), view, target); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSharedUsers handles GET /api/v1/wishlists/:wishlistId/shared-with
func (h *WishlistHandler) ListSharedUsers(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	users, err := h.wishlists.ListSharedUsers(c.Request().Context(), view)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, users)
}

// AddSharedUser handles POST /api/v1/wishlists/:wishlistId/shared-with
func (h *WishlistHandler) AddSharedUser(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument(err.Error()))
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	shared, err := h.wishlists.AddSharedUser(c.Request().Context(), view, req.Email)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, shared)
}

// RemoveSharedUser handles DELETE /api/v1/wishlists/:wishlistId/shared-with/:userId
func (h *WishlistHandler) RemoveSharedUser(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	target, err := userParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	if err := h.wishlists.RemoveSharedUser(c.Request().Context(), view, target); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
