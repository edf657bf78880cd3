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

// PublicHandler serves public wishlists to anyone holding the link.
// Responses use the anonymous projection regardless of who is asking;
// a signed-in visit additionally saves the wishlist to the visitor's
// shared list.
type PublicHandler struct {
	logger    *zap.Logger
	authorize *access.Authorizer
	wishlists *usecase.WishlistService
	items     *usecase.ItemService
}

// NewPublicHandler creates a new public tier handler instance
func NewPublicHandler(
	logger *zap.Logger,
	authorize *access.Authorizer,
	wishlists *usecase.WishlistService,
	items *usecase.ItemService,
) *PublicHandler {
	return &PublicHandler{
		logger:    logger,
		authorize: authorize,
		wishlists: wishlists,
		items:     items,
	}
}

// Get handles GET /api/v1/public/wishlists/:wishlistId
func (h *PublicHandler) Get(c echo.Context) error {
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Public(c.Request().Context(), wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	if viewer := auth.OptionalUser(c); viewer != nil {
		err := h.wishlists.RecordPublicVisit(c.Request().Context(), wishlistID, *viewer)
		if err != nil {
			// The wishlist is still readable; the save retries on the
			// next visit.
			h.logger.Warn("Failed to record public visit",
				zap.String("wishlist_id", wishlistID.String()),
				zap.String("user_id", viewer.String()),
				zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, h.wishlists.GetShared(view))
}

// ListItems handles GET /api/v1/public/wishlists/:wishlistId/items
func (h *PublicHandler) ListItems(c echo.Context) error {
	wishlistID, err := wishlistParam(c)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	view, err := h.authorize.Public(c.Request().Context(), wishlistID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	items, err := h.items.ListPublic(c.Request().Context(), view)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, items)
}
