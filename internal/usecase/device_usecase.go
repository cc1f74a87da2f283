package usecase

import (
	"context"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration identifies a handset that should be told when someone scans the user's pass.
type DeviceRegistration struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase keeps the push targets of a user. The notification worker reads the active ones.
type DeviceUsecase interface {
	// RegisterDevice stores the handset, or refreshes its token when its DeviceID is already known.
	RegisterDevice(ctx context.Context, userID uuid.UUID, registration *DeviceRegistration) (*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices lists the devices that still receive pushes.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device without deleting its row.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
