package handler

import (
	"net/http"

	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/response"
	"knect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PassHandlerParams holds dependencies for PassHandler, injected by Fx.
type PassHandlerParams struct {
	fx.In

	PassUC usecase.PassUsecase
}

// PassHandler renders the caller's Knect Pass.
type PassHandler struct {
	passUC usecase.PassUsecase
}

// NewPassHandler is the constructor for PassHandler.
func NewPassHandler(params PassHandlerParams) *PassHandler {
	return &PassHandler{passUC: params.PassUC}
}

// QRCode returns the pass as a PNG image.
func (h *PassHandler) QRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	png, err := h.passUC.QRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Token returns the text encoded in the pass.
func (h *PassHandler) Token(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": h.passUC.Token(userID)})
}
