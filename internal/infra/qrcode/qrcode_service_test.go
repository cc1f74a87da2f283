package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"knect/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestQRCodeService_GeneratePassQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")

			pngBytes, err := svc.GeneratePassQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_RejectsNilID(t *testing.T) {
	_, err := New(nil).GeneratePassQR(uuid.Nil)
	assert.Error(t, err)
}

func TestNew_UsesConfig(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}})

	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 300, impl.size)
	assert.Equal(t, qrcode.Highest, impl.errorCorrectionLevel)
}
