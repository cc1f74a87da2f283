// Package middleware contains echo middleware specific to the public API.
package middleware

import (
	"log/slog"
	"strings"

	"knect/internal/delivery/api/response"
	deliverycontext "knect/internal/delivery/context"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and exposes the caller's identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid Bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.HandleAppError(c, domainerrors.ErrAuthRequired.WithDetails("missing bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil || claims.UserID == uuid.Nil {
			return response.HandleAppError(c, domainerrors.ErrAuthRequired.WithDetails("invalid or expired token"))
		}

		deliverycontext.SetUserID(c, claims.UserID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// GetUserID returns the identity set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
