package service

import (
	"context"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeBroker fans connection changes out to live subscribers of this process.
type ChangeBroker interface {
	// Publish delivers the change to every subscriber of its connector. It never blocks.
	Publish(change entity.ConnectionChange)

	// Subscribe returns a stream of changes whose connector is connectorID. The stream is closed
	// when ctx ends or cancel is called.
	Subscribe(ctx context.Context, connectorID uuid.UUID) (changes <-chan entity.ConnectionChange, cancel func())

	// Close ends every open stream. Later subscriptions are closed on arrival.
	Close()
}
