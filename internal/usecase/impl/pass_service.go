package impl

import (
	"context"
	"log/slog"

	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/pass"
	"knect/internal/domain/service"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type passService struct {
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// PassServiceParams holds dependencies for PassService, injected by Fx.
type PassServiceParams struct {
	fx.In

	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewPassService creates the pass use case.
func NewPassService(params PassServiceParams) usecase.PassUsecase {
	return &passService{
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// Token returns the text encoded in the user's QR code.
func (srv *passService) Token(userID uuid.UUID) string {
	return pass.Encode(userID)
}

// QRCode renders the user's pass as a PNG.
func (srv *passService) QRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	png, err := srv.qrCodeService.GeneratePassQR(userID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to render pass",
			slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate pass QR code")
	}

	return png, nil
}
