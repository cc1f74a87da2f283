package impl

import (
	"context"
	"testing"

	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	mockRepo "knect/internal/mocks/repository"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newDiscardLogger()}),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	registration := &usecase.DeviceRegistration{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		ListByUser(ctx, userID, false).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, registration)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, registration.FCMToken, device.FCMToken)
	assert.Equal(t, registration.DeviceID, device.DeviceID)
	assert.Equal(t, registration.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "old-token", DeviceID: "device-123", Platform: "ios"}
	updated := &entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "new-fcm-token", DeviceID: "device-123", Platform: "ios", IsActive: true}

	fx.deviceRepo.EXPECT().ListByUser(ctx, userID, false).Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateToken(ctx, deviceID, "new-fcm-token").Return(nil)
	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(updated, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceRegistration{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		ListByUser(ctx, userID, false).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceRegistration{DeviceID: "device-123"})
	assert.Nil(t, device)
	assert.ErrorContains(t, err, "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateToken(ctx, deviceID, "new-fcm-token").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token"))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceForbidden)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().Delete(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		assert.ErrorIs(t, fx.service.DeactivateDevice(ctx, userID, deviceID), domainerrors.ErrDeviceForbidden)
	})
}
