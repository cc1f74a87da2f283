package usecase

import (
	"context"
	"io"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput holds the editable profile fields. Avatars have their own write path.
type ProfileInput struct {
	FullName  string
	JobTitle  string
	LinkedIn  string
	GitHub    string
	Twitter   string
	Instagram string
}

// AvatarOutput is the result of an avatar upload.
type AvatarOutput struct {
	AvatarURL string `json:"avatar_url"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// SaveProfile upserts the caller's own profile.
	SaveProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*entity.Profile, error)
	// UploadAvatar stores the image under the caller's identity and points the profile at it.
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (*AvatarOutput, error)
	// OpenAvatar streams a stored avatar object.
	OpenAvatar(ctx context.Context, key string) (io.ReadCloser, string, error)
}
