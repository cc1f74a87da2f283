package service

import (
	"context"

	"knect/internal/domain/entity"
)

// EventPublisher hands connection changes to the message queue consumed by the push worker.
type EventPublisher interface {
	// PublishConnectionChange publishes one change for asynchronous processing.
	PublishConnectionChange(ctx context.Context, event *entity.ConnectionChange) error

	// Close releases any resources held by the publisher.
	Close() error
}
