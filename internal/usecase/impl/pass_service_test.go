package impl

import (
	"context"
	"testing"

	mockSvc "knect/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassService(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	srv := NewPassService(PassServiceParams{QRCodeService: qr, Logger: newDiscardLogger()})
	userID := uuid.New()

	assert.Equal(t, "knect://user/"+userID.String(), srv.Token(userID))

	qr.EXPECT().GeneratePassQR(userID).Return([]byte("png"), nil).Once()
	png, err := srv.QRCode(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	qr.EXPECT().GeneratePassQR(userID).Return(nil, errors.New("encoder failed")).Once()
	_, err = srv.QRCode(context.Background(), userID)
	assert.ErrorContains(t, err, "failed to generate pass QR code")
}
