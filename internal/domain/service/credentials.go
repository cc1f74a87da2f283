package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims of Knect session tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// PasswordHasher protects the passwords of email accounts. Hashes are salted, so hashing the
// same password twice gives different strings; use Check to compare.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateTokens returns a new access and refresh token pair for userID.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks signature, expiry and type of a token.
	ValidateToken(tokenString string, tokenType string) (*Claims, error)

	// HashToken returns the storage hash of a refresh token.
	HashToken(token string) string

	GetRefreshTokenDuration() time.Duration
}
