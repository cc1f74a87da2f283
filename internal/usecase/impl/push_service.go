package impl

import (
	"context"
	"log/slog"

	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	"knect/internal/domain/service"
	"knect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pushTitle = "New connection"
	// FCM multicast accepts at most 500 tokens per call.
	pushBatchSize = 500
)

type pushService struct {
	deviceRepo  repository.DeviceRepository
	profileRepo repository.ProfileRepository
	notifier    service.NotificationService
	logger      *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	DeviceRepo  repository.DeviceRepository
	ProfileRepo repository.ProfileRepository
	Notifier    service.NotificationService
	Logger      *slog.Logger
}

// NewPushService creates the push use case run by the worker.
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	return &pushService{
		deviceRepo:  params.DeviceRepo,
		profileRepo: params.ProfileRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyConnectionChange tells the counterpart of a new meeting that someone linked with them.
// Only inserted rows owned by someone other than the actor produce a push; everything else is
// acknowledged without work. Errors wrapped with usecase.Retryable should be redelivered.
func (srv *pushService) NotifyConnectionChange(ctx context.Context, change *entity.ConnectionChange) (*usecase.PushResult, error) {
	if change == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("change is required")
	}

	result := &usecase.PushResult{}
	recipientID := change.Connection.ConnectorID
	if change.Type != entity.ChangeInsert || recipientID == change.ActorID {
		return result, nil
	}

	actor, err := srv.profileRepo.FindByID(ctx, change.ActorID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, usecase.Retryable(errors.Wrap(err, "failed to find actor profile"))
	}

	devices, err := srv.deviceRepo.ListByUser(ctx, recipientID, true)
	if err != nil {
		return nil, usecase.Retryable(errors.Wrap(err, "failed to find recipient devices"))
	}
	if len(devices) == 0 {
		srv.log(ctx).Debug("Recipient has no active devices", slog.String("userID", recipientID.String()))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	body := actor.DisplayName() + " linked with you"
	data := map[string]string{
		"type":            "connection",
		"event_id":        change.ID,
		"connection_id":   change.Connection.ID.String(),
		"connected_to_id": change.Connection.ConnectedToID.String(),
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += pushBatchSize {
		end := min(start+pushBatchSize, len(tokens))

		sent, failed, invalid, err := srv.notifier.SendBatchNotification(ctx, tokens[start:end], pushTitle, body, data)
		if err != nil {
			return nil, usecase.Retryable(errors.Wrap(err, "failed to send push notification"))
		}
		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		removed, err := srv.deviceRepo.DeleteByTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Warn("Failed to remove invalid device tokens", slog.Any("error", err))
		}
		result.InvalidTokens = int(removed)
	}

	srv.log(ctx).Info("Connection push sent",
		slog.String("eventID", change.ID),
		slog.String("recipientID", recipientID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens))

	return result, nil
}
