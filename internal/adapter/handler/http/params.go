package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wishbeam/wishbeam/pkg/base62"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// Path parameters carry base62-encoded ids; the internal UUIDs never
// appear on the wire.

func wishlistParam(c echo.Context) (uuid.UUID, error) {
	id, err := base62.Decode(c.Param("wishlistId"))
	if err != nil {
		return uuid.Nil, errors.InvalidArgument("invalid wishlist id")
	}
	return id, nil
}

func itemParam(c echo.Context) (uuid.UUID, error) {
	id, err := base62.Decode(c.Param("itemId"))
	if err != nil {
		return uuid.Nil, errors.InvalidArgument("invalid item id")
	}
	return id, nil
}

func userParam(c echo.Context) (uuid.UUID, error) {
	id, err := base62.Decode(c.Param("userId"))
	if err != nil {
		return uuid.Nil, errors.InvalidArgument("invalid user id")
	}
	return id, nil
}
