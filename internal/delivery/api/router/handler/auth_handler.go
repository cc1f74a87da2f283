package handler

import (
	"log/slog"
	"net/http"

	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/response"
	"knect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler serves sign-up, sign-in and token endpoints.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
	FullName string `json:"full_name" validate:"max=120"`
}

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignUp creates an account and returns a session.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// SignIn returns a session for valid credentials.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.SignIn(c.Request().Context(), usecase.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Refresh issues a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// SignOut revokes the refresh token.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Me returns the caller's account.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	user, err := h.accountUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
