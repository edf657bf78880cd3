package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/middleware/auth"
	"github.com/wishbeam/wishbeam/internal/usecase"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// heartbeatInterval keeps intermediaries from timing out an idle
// event stream.
const heartbeatInterval = 30 * time.Second

// InvalidationHandler streams cache-invalidation events to the
// authenticated user over server-sent events. The subscription lives
// exactly as long as the request: when the client disconnects, the
// request context cancels and the underlying channel subscription is
// torn down.
type InvalidationHandler struct {
	logger *zap.Logger
	bus    *usecase.InvalidationBus
}

// NewInvalidationHandler creates a new invalidation stream handler
func NewInvalidationHandler(logger *zap.Logger, bus *usecase.InvalidationBus) *InvalidationHandler {
	return &InvalidationHandler{
		logger: logger,
		bus:    bus,
	}
}

// Stream handles GET /api/v1/cache/invalidations
func (h *InvalidationHandler) Stream(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	events, err := h.bus.Subscribe(ctx, user.UserID)
	if err != nil {
		return errors.ToHTTPError(errors.Internal("failed to subscribe to invalidation events", err))
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to encode invalidation event",
					zap.String("user_id", user.UserID.String()),
					zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
				return nil
			}
			resp.Flush()

		case <-heartbeat.C:
			if _, err := fmt.Fprint(resp, ": ping\n\n"); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
