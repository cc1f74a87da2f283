package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "knect/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, write func(c echo.Context) error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, write(c))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleAppError(t *testing.T) {
	rec, body := render(t, func(c echo.Context) error {
		return HandleAppError(c, errors.WithStack(domainerrors.ErrSelfScan.WithDetails("scanned own pass")))
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "SELF_SCAN", body.Error.Code)
	assert.Equal(t, "scanned own pass", body.Error.Details)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestHandleAppError_PassesOtherErrorsOn(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	cause := errors.New("socket closed")

	err := HandleAppError(c, cause)

	require.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}

func TestError_HidesDetails(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusBadGateway} {
		_, body := render(t, func(c echo.Context) error {
			return Error(c, status, "NOPE", "nope", map[string]string{"field": "x"})
		})
		assert.Nil(t, body.Error.Details, "status %d", status)
	}

	_, body := render(t, func(c echo.Context) error {
		return BadRequestWithDetails(c, "VALIDATION_FAILED", "bad", "email is required")
	})
	assert.Equal(t, "email is required", body.Error.Details)
}
