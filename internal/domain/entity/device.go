package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push target registered by a user. The counterpart of a new connection is
// notified on each of their active devices.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"` // Client supplied, stable per installation.
	Platform  string    `json:"platform"`  // ios or android.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
