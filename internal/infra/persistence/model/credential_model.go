package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel is a sign-in method of a user, stored in user_authentications. Email
// accounts use the "email" provider with the address as ProviderUserID.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	Provider       string    `gorm:"size:50;not null;uniqueIndex:idx_auth_provider_provider_user_id,priority:1"`
	ProviderUserID string    `gorm:"size:255;not null;uniqueIndex:idx_auth_provider_provider_user_id,priority:2"`
	PasswordHash   string    `gorm:"size:255"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime"`
}

func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel is an outstanding refresh token. Only its hash is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user_id"`
	TokenHash string    `gorm:"size:255;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
