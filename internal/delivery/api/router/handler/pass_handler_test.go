package handler

import (
	"net/http"
	"testing"

	"knect/internal/domain/pass"
	mockUsecase "knect/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPassHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("renders the QR code", func(t *testing.T) {
		passUC := mockUsecase.NewMockPassUsecase(t)
		h := NewPassHandler(PassHandlerParams{PassUC: passUC})
		e := newTestEcho()
		e.GET("/pass", h.QRCode, asUser(userID))

		passUC.EXPECT().QRCode(mock.Anything, userID).Return([]byte("png"), nil)

		rec := serve(e, http.MethodGet, "/pass", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png", rec.Body.String())
	})

	t.Run("hides internal failures", func(t *testing.T) {
		passUC := mockUsecase.NewMockPassUsecase(t)
		h := NewPassHandler(PassHandlerParams{PassUC: passUC})
		e := newTestEcho()
		e.GET("/pass", h.QRCode, asUser(userID))

		passUC.EXPECT().QRCode(mock.Anything, userID).Return(nil, errors.New("encoder exploded"))

		rec := serve(e, http.MethodGet, "/pass", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", errInfo.Code)
		assert.NotContains(t, errInfo.Message, "exploded")
	})

	t.Run("returns the token text", func(t *testing.T) {
		passUC := mockUsecase.NewMockPassUsecase(t)
		h := NewPassHandler(PassHandlerParams{PassUC: passUC})
		e := newTestEcho()
		e.GET("/pass/token", h.Token, asUser(userID))

		passUC.EXPECT().Token(userID).Return(pass.Encode(userID))

		rec := serve(e, http.MethodGet, "/pass/token", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]string
		decodeData(t, rec, &out)
		assert.Equal(t, pass.Encode(userID), out["token"])
	})
}
