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

// ItemHandler handles item CRUD on the owned surface. Content edits
// stay available while an item is locked; only status transitions
// interact with the lock.
type ItemHandler struct {
	logger    *zap.Logger
	authorize *access.Authorizer
	items     *usecase.ItemService
}

// NewItemHandler creates a new item handler instance
func NewItemHandler(
	logger *zap.Logger,
	authorize *access.Authorizer,
	items *usecase.ItemService,
) *ItemHandler {
	return &ItemHandler{
		logger:    logger,
		authorize: authorize,
		items:     items,
	}
}

// ItemRequest is the create/update payload.
type ItemRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"max=2000"`
	Links          []string `json:"links" validate:"max=5,dive,url,max=2000"`
	EstimatedPrice *string  `json:"estimatedPrice" validate:"omitempty,max=100"`
}

// StatusRequest carries a lifecycle transition.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active archived"`
}

// List handles GET /api/v1/wishlists/:wishlistId/items
func (h *ItemHandler) List(c echo.Context) error {
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

	items, err := h.items.ListOwned(c.Request().Context(), view)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/v1/wishlists/:wishlistId/items
func (h *ItemHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	var req ItemRequest
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

	item, err := h.items.Create(c.Request().Context(), view, usecase.ItemInput{
		Title:          req.Title,
		Description:    req.Description,
		Links:          req.Links,
		EstimatedPrice: req.EstimatedPrice,
	})
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/v1/wishlists/:wishlistId/items/:itemId
func (h *ItemHandler) Update(c echo.Context) error {
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

	var req ItemRequest
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

	item, err := h.items.Update(c.Request().Context(), view, itemID, usecase.ItemInput{
		Title:          req.Title,
		Description:    req.Description,
		Links:          req.Links,
		EstimatedPrice: req.EstimatedPrice,
	})
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/v1/wishlists/:wishlistId/items/:itemId
func (h *ItemHandler) Delete(c echo.Context) error {
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

	view, err := h.authorize.Owned(c.Request().Context(), user.UserID, wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	if err := h.items.Delete(c.Request().Context(), view, itemID); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetStatus handles POST /api/v1/wishlists/:wishlistId/items/:itemId/status
func (h *ItemHandler) SetStatus(c echo.Context) error {
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

	var req StatusRequest
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

	item, err := h.items.SetStatus(c.Request().Context(), view, itemID, model.ItemStatus(req.Status))
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, item)
}
