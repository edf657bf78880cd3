package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/access"
	handlers "github.com/wishbeam/wishbeam/internal/adapter/handler/http"
	"github.com/wishbeam/wishbeam/internal/config"
	"github.com/wishbeam/wishbeam/internal/infrastructure/database"
	"github.com/wishbeam/wishbeam/internal/middleware/auth"
	"github.com/wishbeam/wishbeam/internal/usecase"
	"github.com/wishbeam/wishbeam/pkg/logger"
	"github.com/wishbeam/wishbeam/pkg/messaging"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
	pubsub messaging.PubSubClient
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, pubsub messaging.PubSubClient) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
		pubsub: pubsub,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.Use(logger.NewEchoRequestLogger(s.logger))

	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "wishbeam",
		})
	})

	authorize := access.NewAuthorizer(s.repos.Wishlist, s.repos.Owner, s.logger)
	bus := usecase.NewInvalidationBus(s.pubsub, s.logger)
	wishlistService := usecase.NewWishlistService(s.repos.Wishlist, s.repos.Owner, s.repos.Share, s.repos.User, bus, s.logger)
	itemService := usecase.NewItemService(s.repos.Item, s.repos.Wishlist, bus, s.logger)

	wishlistHandler := handlers.NewWishlistHandler(s.logger, authorize, wishlistService)
	itemHandler := handlers.NewItemHandler(s.logger, authorize, itemService)
	sharedHandler := handlers.NewSharedHandler(s.logger, authorize, wishlistService, itemService)
	publicHandler := handlers.NewPublicHandler(s.logger, authorize, wishlistService, itemService)
	invalidationHandler := handlers.NewInvalidationHandler(s.logger, bus)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.Auth.JWTSecret,
		Logger: s.logger,
		Users:  s.repos.User,
	}

	v1 := s.echo.Group("/api/v1")

	// Public routes; a token is honored when present so signed-in
	// visits get saved, but none is required.
	public := v1.Group("/public/wishlists", auth.OptionalJWTMiddleware(jwtConfig))
	public.GET("/:wishlistId", publicHandler.Get)
	public.GET("/:wishlistId/items", publicHandler.ListItems)

	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))

	// Owned surface
	wishlists := protected.Group("/wishlists")
	wishlists.GET("", wishlistHandler.List)
	wishlists.POST("", wishlistHandler.Create)
	wishlists.GET("/:wishlistId", wishlistHandler.Get)
	wishlists.PUT("/:wishlistId", wishlistHandler.Update)
	wishlists.DELETE("/:wishlistId", wishlistHandler.Delete)

	wishlists.GET("/:wishlistId/owners", wishlistHandler.ListOwners)
	wishlists.POST("/:wishlistId/owners", wishlistHandler.AddOwner)
	wishlists.DELETE("/:wishlistId/owners/:userId", wishlistHandler.RemoveOwner)

	wishlists.GET("/:wishlistId/shared-with", wishlistHandler.ListSharedUsers)
	wishlists.POST("/:wishlistId/shared-with", wishlistHandler.AddSharedUser)
	wishlists.DELETE("/:wishlistId/shared-with/:userId", wishlistHandler.RemoveSharedUser)

	wishlists.GET("/:wishlistId/items", itemHandler.List)
	wishlists.POST("/:wishlistId/items", itemHandler.Create)
	wishlists.PUT("/:wishlistId/items/:itemId", itemHandler.Update)
	wishlists.DELETE("/:wishlistId/items/:itemId", itemHandler.Delete)
	wishlists.POST("/:wishlistId/items/:itemId/status", itemHandler.SetStatus)

	// Shared tier
	shared := protected.Group("/shared/wishlists")
	shared.GET("", sharedHandler.List)
	shared.GET("/:wishlistId", sharedHandler.Get)
	shared.DELETE("/:wishlistId", sharedHandler.Leave)
	shared.GET("/:wishlistId/items", sharedHandler.ListItems)
	shared.POST("/:wishlistId/items/:itemId/lock", sharedHandler.LockItem)
	shared.POST("/:wishlistId/items/:itemId/unlock", sharedHandler.UnlockItem)

	// Invalidation stream
	protected.GET("/cache/invalidations", invalidationHandler.Stream)
}
