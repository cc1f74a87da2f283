package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PassUsecase renders the caller's scannable pass.
type PassUsecase interface {
	Token(userID uuid.UUID) string
	QRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
