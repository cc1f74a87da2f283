package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"knect/config"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	"knect/internal/domain/service"
	mockRepo "knect/internal/mocks/repository"
	mockSvc "knect/internal/mocks/service"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type profileServiceFixtures struct {
	service     *profileService
	profileRepo *mockRepo.MockProfileRepository
	storage     *mockSvc.MockBlobStorage
}

func createTestProfileService(t *testing.T, maxAvatarBytes int64) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	storage := mockSvc.NewMockBlobStorage(t)

	srv := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Storage:     storage,
		Config:      &config.Config{Storage: &config.StorageConfig{MaxAvatarBytes: maxAvatarBytes}},
		Logger:      newDiscardLogger(),
	}).(*profileService)
	srv.now = func() time.Time { return time.UnixMilli(1700000000123) }

	return profileServiceFixtures{service: srv, profileRepo: profileRepo, storage: storage}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t, 0)
	ctx := context.Background()
	known, missing := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, known).Return(&entity.Profile{ID: known, FullName: "Ada"}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, known)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FullName)

	_, err = fx.service.GetProfile(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_SaveProfile(t *testing.T) {
	fx := createTestProfileService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == userID && p.FullName == "Ada Lovelace" && p.GitHub == "ada" && p.AvatarURL == nil
		})).
		Return(nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, FullName: "Ada Lovelace", GitHub: "ada"}, nil)

	saved, err := fx.service.SaveProfile(ctx, userID, usecase.ProfileInput{FullName: " Ada Lovelace ", GitHub: "ada"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", saved.FullName)
}

func TestProfileService_SaveProfile_Errors(t *testing.T) {
	t.Run("field too long", func(t *testing.T) {
		fx := createTestProfileService(t, 0)

		_, err := fx.service.SaveProfile(context.Background(), uuid.New(), usecase.ProfileInput{
			JobTitle: strings.Repeat("x", maxProfileFieldLength+1),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("write failure", func(t *testing.T) {
		fx := createTestProfileService(t, 0)
		ctx := context.Background()

		fx.profileRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("db down"))

		_, err := fx.service.SaveProfile(ctx, uuid.New(), usecase.ProfileInput{FullName: "Ada"})
		assert.ErrorIs(t, err, domainerrors.ErrProfileUpdateFailed)
	})
}

func TestProfileService_UploadAvatar(t *testing.T) {
	fx := createTestProfileService(t, 1024)
	ctx := context.Background()
	userID := uuid.New()
	key := userID.String() + "/avatar.png"
	wantURL := "https://cdn.example.com/" + key + "?t=1700000000123"

	fx.storage.EXPECT().Put(ctx, key, pngHeader, "image/png").Return(nil)
	fx.storage.EXPECT().PublicURL(key).Return("https://cdn.example.com/" + key)
	fx.profileRepo.EXPECT().UpdateAvatarURL(ctx, userID, wantURL).Return(nil)

	out, err := fx.service.UploadAvatar(ctx, userID, pngHeader, "")
	require.NoError(t, err)
	assert.Equal(t, wantURL, out.AvatarURL)
}

func TestProfileService_UploadAvatar_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		wantErr     error
	}{
		{name: "empty", data: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "too large", data: bytes.Repeat([]byte{1}, 17), wantErr: domainerrors.ErrAvatarTooLarge},
		{name: "not an image", data: []byte("hello"), contentType: "text/plain", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t, 16)

			_, err := fx.service.UploadAvatar(context.Background(), uuid.New(), tt.data, tt.contentType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_UploadAvatar_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t, 1024)
	ctx := context.Background()
	userID := uuid.New()

	fx.storage.EXPECT().Put(ctx, AvatarKey(userID), pngHeader, "image/png").Return(errors.New("bucket unavailable"))

	_, err := fx.service.UploadAvatar(ctx, userID, pngHeader, "image/png")
	assert.ErrorIs(t, err, domainerrors.ErrAvatarUploadFailed)
}

func TestProfileService_OpenAvatar(t *testing.T) {
	fx := createTestProfileService(t, 0)
	ctx := context.Background()

	fx.storage.EXPECT().
		Open(ctx, "u1/avatar.png").
		Return(io.NopCloser(bytes.NewReader(pngHeader)), "image/png", nil)
	fx.storage.EXPECT().
		Open(ctx, "u2/avatar.png").
		Return(nil, "", service.ErrObjectNotFound)

	reader, contentType, err := fx.service.OpenAvatar(ctx, "/u1/avatar.png")
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "image/png", contentType)

	_, _, err = fx.service.OpenAvatar(ctx, "u2/avatar.png")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)

	_, _, err = fx.service.OpenAvatar(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
