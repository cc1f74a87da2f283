package impl

import (
	"context"
	"fmt"
	"testing"

	"knect/internal/domain/entity"
	"knect/internal/domain/repository"
	mockRepo "knect/internal/mocks/repository"
	mockSvc "knect/internal/mocks/service"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushServiceFixtures struct {
	service     usecase.PushUsecase
	deviceRepo  *mockRepo.MockDeviceRepository
	profileRepo *mockRepo.MockProfileRepository
	notifier    *mockSvc.MockNotificationService
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	fixtures := pushServiceFixtures{
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		notifier:    mockSvc.NewMockNotificationService(t),
	}
	fixtures.service = NewPushService(PushServiceParams{
		DeviceRepo:  fixtures.deviceRepo,
		ProfileRepo: fixtures.profileRepo,
		Notifier:    fixtures.notifier,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

// counterpartInsert is the row owned by the scanned user, created by the scanner.
func counterpartInsert(scanner, scanned uuid.UUID) *entity.ConnectionChange {
	return &entity.ConnectionChange{
		ID:      "evt-1",
		Type:    entity.ChangeInsert,
		ActorID: scanner,
		Connection: entity.Connection{
			ID:            uuid.New(),
			ConnectorID:   scanned,
			ConnectedToID: scanner,
		},
	}
}

func TestPushService_NotifiesCounterpart(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	scanner, scanned := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, scanner).Return(&entity.Profile{ID: scanner, FullName: "Ada"}, nil)
	fx.deviceRepo.EXPECT().ListByUser(ctx, scanned, true).Return([]*entity.UserDevice{
		{FCMToken: "token-a"}, {FCMToken: "token-b"},
	}, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "New connection", "Ada linked with you",
			mock.MatchedBy(func(data map[string]string) bool { return data["connected_to_id"] == scanner.String() })).
		Return(1, 1, []string{"token-b"}, nil)
	fx.deviceRepo.EXPECT().DeleteByTokens(ctx, []string{"token-b"}).Return(int64(1), nil)

	result, err := fx.service.NotifyConnectionChange(ctx, counterpartInsert(scanner, scanned))
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestPushService_SkipsNonPushEvents(t *testing.T) {
	scanner, scanned := uuid.New(), uuid.New()

	ownRow := counterpartInsert(scanner, scanned)
	ownRow.Connection.ConnectorID, ownRow.Connection.ConnectedToID = scanner, scanned

	update := counterpartInsert(scanner, scanned)
	update.Type = entity.ChangeUpdate

	deletion := counterpartInsert(scanner, scanned)
	deletion.Type = entity.ChangeDelete

	for name, change := range map[string]*entity.ConnectionChange{"actor row": ownRow, "update": update, "delete": deletion} {
		t.Run(name, func(t *testing.T) {
			fx := createTestPushService(t)

			result, err := fx.service.NotifyConnectionChange(context.Background(), change)
			require.NoError(t, err)
			assert.Equal(t, &usecase.PushResult{}, result)
		})
	}
}

func TestPushService_UnknownActorAndNoDevices(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	scanner, scanned := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, scanner).Return(nil, repository.ErrProfileNotFound)
	fx.deviceRepo.EXPECT().ListByUser(ctx, scanned, true).Return(nil, nil)

	result, err := fx.service.NotifyConnectionChange(ctx, counterpartInsert(scanner, scanned))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestPushService_RetryableFailures(t *testing.T) {
	scanner, scanned := uuid.New(), uuid.New()

	t.Run("device lookup", func(t *testing.T) {
		fx := createTestPushService(t)
		ctx := context.Background()

		fx.profileRepo.EXPECT().FindByID(ctx, scanner).Return(&entity.Profile{FullName: "Ada"}, nil)
		fx.deviceRepo.EXPECT().ListByUser(ctx, scanned, true).Return(nil, errors.New("db down"))

		_, err := fx.service.NotifyConnectionChange(ctx, counterpartInsert(scanner, scanned))
		assert.ErrorIs(t, err, usecase.ErrRetryable)
	})

	t.Run("send", func(t *testing.T) {
		fx := createTestPushService(t)
		ctx := context.Background()

		fx.profileRepo.EXPECT().FindByID(ctx, scanner).Return(&entity.Profile{FullName: "Ada"}, nil)
		fx.deviceRepo.EXPECT().ListByUser(ctx, scanned, true).Return([]*entity.UserDevice{{FCMToken: "t"}}, nil)
		fx.notifier.EXPECT().
			SendBatchNotification(ctx, []string{"t"}, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("fcm unavailable"))

		_, err := fx.service.NotifyConnectionChange(ctx, counterpartInsert(scanner, scanned))
		assert.ErrorIs(t, err, usecase.ErrRetryable)
	})
}

func TestPushService_BatchesLargeDeviceLists(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	scanner, scanned := uuid.New(), uuid.New()

	devices := make([]*entity.UserDevice, pushBatchSize+1)
	for i := range devices {
		devices[i] = &entity.UserDevice{FCMToken: fmt.Sprintf("token-%d", i)}
	}

	fx.profileRepo.EXPECT().FindByID(ctx, scanner).Return(&entity.Profile{FullName: "Ada"}, nil)
	fx.deviceRepo.EXPECT().ListByUser(ctx, scanned, true).Return(devices, nil)
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == pushBatchSize }),
			mock.Anything, mock.Anything, mock.Anything).
		Return(pushBatchSize, 0, nil, nil).Once()
	fx.notifier.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", pushBatchSize)},
			mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).Once()

	result, err := fx.service.NotifyConnectionChange(ctx, counterpartInsert(scanner, scanned))
	require.NoError(t, err)
	assert.Equal(t, pushBatchSize+1, result.Sent)
}
