package impl

import (
	"context"
	"testing"
	"time"

	"knect/config"
	"knect/internal/domain/constants"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	"knect/internal/domain/service"
	mockRepo "knect/internal/mocks/repository"
	mockSvc "knect/internal/mocks/service"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fixtures := accountServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	fixtures.service = NewAccountService(AccountServiceParams{
		TxManager:        fixtures.txManager,
		UserRepo:         fixtures.userRepo,
		AuthRepo:         fixtures.authRepo,
		RefreshTokenRepo: fixtures.refreshTokenRepo,
		Hasher:           fixtures.hasher,
		TokenService:     fixtures.tokenService,
		Config:           &config.Config{Auth: &config.AuthConfig{MinPasswordLen: 8}},
		Logger:           newDiscardLogger(),
	})

	return fixtures
}

func (f accountServiceFixtures) expectSession(ctx context.Context) {
	f.tokenService.EXPECT().GenerateTokens(mock.Anything).Return("access-token", "refresh-token", nil)
	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, mock.Anything).Return(nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "refresh-hash" && token.ExpiresAt.After(time.Now())
		})).
		Return(nil)
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	newUserID := uuid.New()

	fx.hasher.EXPECT().Hash("correct horse").Return("hashed", nil)
	expectTx(fx.txManager, factory)
	factory.EXPECT().NewAuthRepository().Return(txAuthRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, constants.AuthProviderEmail, "ada@example.com").
		Return(nil, repository.ErrAuthNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = newUserID }).
		Return(nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == newUserID && auth.PasswordHash == "hashed" && auth.ProviderUserID == "ada@example.com"
		})).
		Return(nil)
	txProfileRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
			return profile.ID == newUserID && profile.FullName == "Ada Lovelace"
		})).
		Return(nil)
	fx.expectSession(ctx)

	out, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:    "  Ada@Example.com ",
		Password: "correct horse",
		FullName: " Ada Lovelace ",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, newUserID, out.User.ID)
	assert.Equal(t, "ada@example.com", out.User.Email)
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)

	fx.hasher.EXPECT().Hash("correct horse").Return("hashed", nil)
	expectTx(fx.txManager, factory)
	factory.EXPECT().NewAuthRepository().Return(txAuthRepo)
	txAuthRepo.EXPECT().
		FindAuthentication(ctx, constants.AuthProviderEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	out, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "ada@example.com", Password: "correct horse"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_SignUp_ShortPassword(t *testing.T) {
	fx := createTestAccountService(t)

	out, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{Email: "ada@example.com", Password: "short"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_SignUp_TransactionFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("correct horse").Return("hashed", nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("connection reset"))

	out, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "ada@example.com", Password: "correct horse"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
}

func TestAccountService_SignIn(t *testing.T) {
	userID := uuid.New()
	auth := &entity.Authentication{UserID: userID, PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, constants.AuthProviderEmail, "ada@example.com").Return(auth, nil)
		fx.hasher.EXPECT().Check("correct horse", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "ada@example.com"}, nil)
		fx.expectSession(ctx)

		out, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "ADA@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, userID, out.User.ID)
		assert.Equal(t, "access-token", out.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, constants.AuthProviderEmail, "ada@example.com").Return(auth, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "ada@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().
			FindAuthentication(ctx, constants.AuthProviderEmail, "who@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "who@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().
			ValidateToken("refresh-token", service.TokenTypeRefresh).
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().
			FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "unused-refresh", nil)

		out, err := fx.service.Refresh(ctx, "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
		assert.Empty(t, out.RefreshToken)
	})

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().
			ValidateToken("refresh-token", service.TokenTypeRefresh).
			Return(&service.Claims{UserID: userID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().
			FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.Refresh(ctx, "refresh-token")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.tokenService.EXPECT().
			ValidateToken("garbage", service.TokenTypeRefresh).
			Return(nil, errors.New("token is malformed"))

		_, err := fx.service.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAccountService_SignOut_IgnoresUnknownToken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.SignOut(ctx, "refresh-token"))
}

func TestAccountService_Me_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Me(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
