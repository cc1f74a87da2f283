package handler

import (
	"io"
	"log/slog"
	"net/http"

	"knect/config"
	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/response"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const avatarCacheControl = "public, max-age=300"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProfileHandler serves profile reads, edits and avatars.
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	maxAvatarBytes int64
	logger         *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	var maxAvatarBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxAvatarBytes = params.Config.Storage.MaxAvatarBytes
	}

	return &ProfileHandler{
		profileUC:      params.ProfileUC,
		maxAvatarBytes: maxAvatarBytes,
		logger:         params.Logger,
	}
}

// ProfileRequest is the body of PUT /profile.
type ProfileRequest struct {
	FullName  string `json:"full_name" validate:"max=120"`
	JobTitle  string `json:"job_title" validate:"max=120"`
	LinkedIn  string `json:"linkedin" validate:"max=120"`
	GitHub    string `json:"github" validate:"max=120"`
	Twitter   string `json:"twitter" validate:"max=120"`
	Instagram string `json:"instagram" validate:"max=120"`
}

// GetMyProfile returns the caller's profile.
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfile returns any user's public profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SaveProfile upserts the caller's profile.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.SaveProfile(c.Request().Context(), userID, usecase.ProfileInput{
		FullName:  req.FullName,
		JobTitle:  req.JobTitle,
		LinkedIn:  req.LinkedIn,
		GitHub:    req.GitHub,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadAvatar stores the raw request body as the caller's avatar.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	body := io.Reader(c.Request().Body)
	if h.maxAvatarBytes > 0 {
		// One extra byte lets the use case tell "at the limit" from "over it".
		body = io.LimitReader(body, h.maxAvatarBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("failed to read image")
	}

	out, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, data, c.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// ServeAvatar streams a stored avatar. It is public so the URLs can be used in image tags.
func (h *ProfileHandler) ServeAvatar(c echo.Context) error {
	reader, contentType, err := h.profileUC.OpenAvatar(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", avatarCacheControl)

	return c.Stream(http.StatusOK, contentType, reader)
}
