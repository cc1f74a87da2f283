package usecase

import (
	"context"

	"knect/internal/domain/entity"
)

// PushResult summarizes one fan-out to devices.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// PushUsecase turns connection changes into device notifications. It runs in the worker.
type PushUsecase interface {
	// NotifyConnectionChange pushes to the devices of the user on the receiving end of a new
	// connection. Errors wrapped with ErrRetryable should be redelivered.
	NotifyConnectionChange(ctx context.Context, change *entity.ConnectionChange) (*PushResult, error)
}
