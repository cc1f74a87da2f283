package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"knect/config"
	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	"knect/internal/domain/service"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarObjectName       = "avatar.png"
	defaultMaxAvatarBytes  = 5 << 20
	maxProfileFieldLength  = 120
	avatarContentTypeImage = "image/"
)

type profileService struct {
	profileRepo    repository.ProfileRepository
	storage        service.BlobStorage
	maxAvatarBytes int64
	logger         *slog.Logger
	now            func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Storage     service.BlobStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService creates the profile use case.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxAvatarBytes := int64(defaultMaxAvatarBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxAvatarBytes > 0 {
		maxAvatarBytes = params.Config.Storage.MaxAvatarBytes
	}

	return &profileService{
		profileRepo:    params.ProfileRepo,
		storage:        params.Storage,
		maxAvatarBytes: maxAvatarBytes,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the profile keyed by an identity id.
func (srv *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// SaveProfile inserts the caller's profile or updates the editable fields of the existing one.
// The avatar URL is managed by UploadAvatar and is left untouched.
func (srv *profileService) SaveProfile(ctx context.Context, userID uuid.UUID, input usecase.ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		ID:        userID,
		FullName:  strings.TrimSpace(input.FullName),
		JobTitle:  strings.TrimSpace(input.JobTitle),
		LinkedIn:  strings.TrimSpace(input.LinkedIn),
		GitHub:    strings.TrimSpace(input.GitHub),
		Twitter:   strings.TrimSpace(input.Twitter),
		Instagram: strings.TrimSpace(input.Instagram),
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to upsert profile", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrProfileUpdateFailed.WrapMessage(err.Error())
	}

	saved, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload profile")
	}

	return saved, nil
}

// UploadAvatar stores the image under a per-user key and points the profile at it. The returned URL
// carries a timestamp so clients do not keep showing a cached previous image.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (*usecase.AvatarOutput, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("avatar body is empty")
	}
	if int64(len(data)) > srv.maxAvatarBytes {
		return nil, domainerrors.ErrAvatarTooLarge.WithDetails(fmt.Sprintf("limit is %d bytes", srv.maxAvatarBytes))
	}

	if contentType == "" || !strings.HasPrefix(contentType, avatarContentTypeImage) {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, avatarContentTypeImage) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("avatar must be an image")
	}

	key := AvatarKey(userID)
	if err := srv.storage.Put(ctx, key, data, contentType); err != nil {
		srv.log(ctx).Error("Failed to store avatar", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrAvatarUploadFailed.WrapMessage(err.Error())
	}

	url := fmt.Sprintf("%s?t=%d", srv.storage.PublicURL(key), srv.now().UnixMilli())
	if err := srv.profileRepo.UpdateAvatarURL(ctx, userID, url); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ErrProfileUpdateFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Avatar updated", slog.String("userID", userID.String()), slog.Int("bytes", len(data)))

	return &usecase.AvatarOutput{AvatarURL: url}, nil
}

// OpenAvatar streams a stored avatar object.
func (srv *profileService) OpenAvatar(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, "", domainerrors.ErrProfileNotFound
	}

	reader, contentType, err := srv.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, "", domainerrors.ErrProfileNotFound.WithDetails("avatar not found")
		}

		return nil, "", errors.Wrap(err, "failed to open avatar")
	}

	return reader, contentType, nil
}

// AvatarKey is the object key of a user's avatar. Every upload overwrites the same object.
func AvatarKey(userID uuid.UUID) string {
	return userID.String() + "/" + avatarObjectName
}

func validateProfile(profile *entity.Profile) error {
	fields := map[string]string{
		"full_name": profile.FullName,
		"job_title": profile.JobTitle,
		"linkedin":  profile.LinkedIn,
		"github":    profile.GitHub,
		"twitter":   profile.Twitter,
		"instagram": profile.Instagram,
	}
	for name, value := range fields {
		if len([]rune(value)) > maxProfileFieldLength {
			return domainerrors.ErrValidationFailed.WithDetails(name + " is too long")
		}
	}

	return nil
}
