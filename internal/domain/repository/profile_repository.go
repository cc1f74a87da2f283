package repository

import (
	"context"
	"errors"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for an identity.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists profiles keyed by identity id.
type ProfileRepository interface {
	// FindByID retrieves the profile of an identity.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Upsert inserts the profile or updates name, title and social handles of an existing one.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// UpdateAvatarURL sets the avatar reference of an existing profile.
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
}
