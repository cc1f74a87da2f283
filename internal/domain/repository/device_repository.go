package repository

import (
	"context"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the user already registered the device id.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository persists push targets.
type DeviceRepository interface {
	// Create persists a new device for a user.
	Create(ctx context.Context, device *entity.UserDevice) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListByUser returns the user's devices, newest first. activeOnly skips deactivated ones.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)

	// UpdateToken replaces the FCM token of a device and reactivates it.
	UpdateToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// Delete removes a device by its ID (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTokens removes every device holding one of the tokens. Used for tokens rejected by FCM.
	DeleteByTokens(ctx context.Context, tokens []string) (int64, error)
}
