package repository

import (
	"context"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is unknown or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores hashed refresh tokens, one per signed-in session.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a non-expired refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredRefreshTokens removes expired tokens of one user.
	DeleteExpiredRefreshTokens(ctx context.Context, userID uuid.UUID) error
}
