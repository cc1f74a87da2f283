package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders pass tokens as QR images.
type QRCodeService interface {
	// GeneratePassQR renders the pass token of an identity as a PNG.
	GeneratePassQR(id uuid.UUID) ([]byte, error)
}
