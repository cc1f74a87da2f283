package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"knect/config"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	mockUsecase "knect/internal/mocks/usecase"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T, maxAvatarBytes int64) (*mockUsecase.MockProfileUsecase, *ProfileHandler) {
	t.Helper()

	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return profileUC, NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Config:    &config.Config{Storage: &config.StorageConfig{MaxAvatarBytes: maxAvatarBytes}},
		Logger:    newDiscardLogger(),
	})
}

func TestProfileHandler_SaveProfile(t *testing.T) {
	userID := uuid.New()
	profileUC, h := newProfileHandler(t, 0)
	e := newTestEcho()
	e.PUT("/profile", h.SaveProfile, asUser(userID))

	profileUC.EXPECT().
		SaveProfile(mock.Anything, userID, usecase.ProfileInput{FullName: "Ada Lovelace", JobTitle: "Analyst", GitHub: "ada"}).
		Return(&entity.Profile{ID: userID, FullName: "Ada Lovelace", JobTitle: "Analyst", GitHub: "ada"}, nil)

	rec := serve(e, http.MethodPut, "/profile", `{"full_name":"Ada Lovelace","job_title":"Analyst","github":"ada"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var profile entity.Profile
	decodeData(t, rec, &profile)
	assert.Equal(t, "Ada Lovelace", profile.FullName)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	id := uuid.New()
	profileUC, h := newProfileHandler(t, 0)
	e := newTestEcho()
	e.GET("/profiles/:id", h.GetProfile, asUser(uuid.New()))

	profileUC.EXPECT().GetProfile(mock.Anything, id).Return(nil, domainerrors.ErrProfileNotFound)

	rec := serve(e, http.MethodGet, "/profiles/"+id.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	userID := uuid.New()

	t.Run("passes the body and content type through", func(t *testing.T) {
		profileUC, h := newProfileHandler(t, 16)
		e := newTestEcho()
		e.PUT("/profile/avatar", h.UploadAvatar, asUser(userID))

		image := []byte("\x89PNG\r\n\x1a\nabc")
		profileUC.EXPECT().
			UploadAvatar(mock.Anything, userID, image, "image/png").
			Return(&usecase.AvatarOutput{AvatarURL: "http://localhost/avatars/x.png?t=1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/profile/avatar", bytes.NewReader(image))
		req.Header.Set("Content-Type", "image/png")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out usecase.AvatarOutput
		decodeData(t, rec, &out)
		assert.Equal(t, "http://localhost/avatars/x.png?t=1", out.AvatarURL)
	})

	t.Run("reads at most one byte past the limit", func(t *testing.T) {
		profileUC, h := newProfileHandler(t, 4)
		e := newTestEcho()
		e.PUT("/profile/avatar", h.UploadAvatar, asUser(userID))

		profileUC.EXPECT().
			UploadAvatar(mock.Anything, userID, []byte("abcde"), "image/png").
			Return(nil, domainerrors.ErrAvatarTooLarge)

		req := httptest.NewRequest(http.MethodPut, "/profile/avatar", bytes.NewReader([]byte("abcdefghij")))
		req.Header.Set("Content-Type", "image/png")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "AVATAR_TOO_LARGE", decodeError(t, rec).Code)
	})
}

func TestProfileHandler_ServeAvatar(t *testing.T) {
	userID := uuid.New()
	profileUC, h := newProfileHandler(t, 0)
	e := newTestEcho()
	e.GET("/avatars/*", h.ServeAvatar)

	key := userID.String() + "/avatar.png"
	profileUC.EXPECT().
		OpenAvatar(mock.Anything, key).
		Return(io.NopCloser(bytes.NewReader([]byte("png-bytes"))), "image/png", nil)

	rec := serve(e, http.MethodGet, "/avatars/"+key, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, avatarCacheControl, rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}
