// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"knect/config"
	deliverycontext "knect/internal/delivery/context"
	"knect/internal/domain/constants"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	"knect/internal/domain/service"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLen = 8

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	minPasswordLen   int
	logger           *slog.Logger
	now              func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPasswordLen := defaultMinPasswordLen
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLen > 0 {
		minPasswordLen = params.Config.Auth.MinPasswordLen
	}

	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		minPasswordLen:   minPasswordLen,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the user, its email credential and an empty profile in one transaction, then
// opens a session.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if len(input.Password) < srv.minPasswordLen {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPasswordLen))
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{Email: email}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		if _, err := authRepo.FindAuthentication(ctx, constants.AuthProviderEmail, email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       constants.AuthProviderEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		profile := &entity.Profile{ID: user.ID, FullName: strings.TrimSpace(input.FullName)}
		if err := repoFactory.NewProfileRepository().Upsert(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}
		srv.log(ctx).Error("Failed to execute sign-up transaction", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return srv.issueSession(ctx, user)
}

// SignIn verifies email and password and opens a session.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	auth, err := srv.authRepo.FindAuthentication(ctx, constants.AuthProviderEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Info("Rejected sign-in", slog.String("userID", auth.UserID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, auth.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueSession(ctx, user)
}

// Refresh exchanges a stored refresh token for a new access token.
func (srv *accountService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{AccessToken: accessToken, User: user}, nil
}

// SignOut revokes a refresh token. Unknown tokens are ignored.
func (srv *accountService) SignOut(ctx context.Context, refreshToken string) error {
	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// Me returns the account behind the current identity.
func (srv *accountService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *accountService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// Expired sessions are pruned lazily on login.
	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to prune expired refresh tokens", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
