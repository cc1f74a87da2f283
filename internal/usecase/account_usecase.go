// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens and the signed-in identity.
type AuthOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         *entity.User `json:"user"`
}

// AccountUsecase defines account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp creates the account, its email credential and an empty profile in one transaction.
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthOutput, error)
	// Refresh issues a new access token for a live refresh token.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
	SignOut(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
