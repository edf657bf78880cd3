package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wishbeam/wishbeam/internal/domain/model"
	"github.com/wishbeam/wishbeam/internal/domain/repository"
	"github.com/wishbeam/wishbeam/pkg/errors"
)

// AuthUser represents an authenticated user from the session token
type AuthUser struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// contextKey is used for storing user in context
type contextKey string

const (
	userContextKey contextKey = "authenticated_user"
)

// JWTConfig holds the configuration for JWT middleware
type JWTConfig struct {
	Secret string
	Logger *zap.Logger
	// Users receives a lazy upsert of the authenticated identity so the
	// local users table tracks the external auth provider.
	Users repository.UserRepository
}

// JWTMiddleware creates a middleware that validates session JWTs and
// rejects unauthenticated requests.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authUser, err := authenticate(c, config)
			if err != nil {
				return respondAuthError(c, err)
			}
			if authUser == nil {
				config.Logger.Warn("Missing authorization header",
					zap.String("path", c.Request().URL.Path),
					zap.String("method", c.Request().Method))
				return respondAuthError(c, errors.Unauthenticated("Authorization header required"))
			}

			setAuthUser(c, authUser)
			return next(c)
		}
	}
}

// OptionalJWTMiddleware authenticates the caller when a token is
// present but lets anonymous requests through. Public endpoints use it
// to tell signed-in visitors apart from anonymous ones. A token that
// is present but invalid is still rejected; falling through would
// serve the anonymous view to a client that believes it is signed in.
func OptionalJWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authUser, err := authenticate(c, config)
			if err != nil {
				return respondAuthError(c, err)
			}
			if authUser != nil {
				setAuthUser(c, authUser)
			}
			return next(c)
		}
	}
}

// respondAuthError writes the single JSON error response for a failed
// authentication and stops the chain.
func respondAuthError(c echo.Context, err error) error {
	httpErr := errors.ToHTTPError(err)
	return c.JSON(httpErr.Code, httpErr.Message)
}

// authenticate validates the bearer token when one is present. It
// returns (nil, nil) when the request carries no Authorization header,
// and an Unauthenticated AppError when the header is present but
// invalid. It never writes to the response; the middlewares own that.
func authenticate(c echo.Context, config JWTConfig) (*AuthUser, error) {
	path := c.Request().URL.Path

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		config.Logger.Warn("Invalid authorization header format",
			zap.String("path", path))
		return nil, errors.Unauthenticated("Invalid authorization header format. Expected: Bearer <token>")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Secret), nil
	})
	if err != nil {
		config.Logger.Warn("JWT validation failed",
			zap.Error(err),
			zap.String("path", path))
		return nil, errors.Unauthenticated("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		config.Logger.Warn("Invalid JWT claims",
			zap.String("path", path))
		return nil, errors.Unauthenticated("Invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		config.Logger.Warn("Invalid subject claim",
			zap.String("sub", sub),
			zap.String("path", path))
		return nil, errors.Unauthenticated("Invalid token subject")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	authUser := &AuthUser{
		UserID: userID,
		Email:  email,
		Name:   name,
	}

	if config.Users != nil {
		err := config.Users.Upsert(c.Request().Context(), &model.User{
			ID:          userID,
			Email:       email,
			DisplayName: name,
		})
		if err != nil {
			// The identity is still verified; the refresh retries on
			// the next request.
			config.Logger.Warn("Failed to refresh user record",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	config.Logger.Debug("User authenticated successfully",
		zap.String("user_id", userID.String()),
		zap.String("path", path))

	return authUser, nil
}

func setAuthUser(c echo.Context, user *AuthUser) {
	ctx := context.WithValue(c.Request().Context(), userContextKey, user)
	c.SetRequest(c.Request().WithContext(ctx))
	c.Set("user_id", user.UserID.String())
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(c echo.Context) (*AuthUser, error) {
	user, ok := c.Request().Context().Value(userContextKey).(*AuthUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user found in context")
	}
	return user, nil
}

// RequireAuth is a helper function to get the user or fail with 401
func RequireAuth(c echo.Context) (*AuthUser, error) {
	user, err := GetUserFromContext(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "UNAUTHENTICATED",
		})
	}
	return user, nil
}

// OptionalUser returns the authenticated user's id, or nil for an
// anonymous request.
func OptionalUser(c echo.Context) *uuid.UUID {
	user, err := GetUserFromContext(c)
	if err != nil {
		return nil
	}
	id := user.UserID
	return &id
}
