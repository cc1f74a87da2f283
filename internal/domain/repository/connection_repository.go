package repository

import (
	"context"
	"errors"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConnectionNotFound is returned when a connection does not exist or is not owned by the caller.
var ErrConnectionNotFound = errors.New("connection not found")

// ConnectionFilter narrows a connection listing.
type ConnectionFilter struct {
	// Query is matched case-insensitively as a substring of the counterpart's name or title.
	Query string
}

// ConnectionRepository persists directed connection edges.
type ConnectionRepository interface {
	// UpsertPair writes both rows of a meeting. Each ordered pair is unique; an existing row is
	// updated in place with the new timestamp and coordinate. The returned rows carry their ids.
	UpsertPair(ctx context.Context, pair [2]entity.Connection) ([2]entity.Connection, error)

	// Exists reports whether a row exists for the ordered pair.
	Exists(ctx context.Context, connectorID, connectedToID uuid.UUID) (bool, error)

	// ListByConnector returns the connector's rows joined with the counterpart profile, newest first.
	ListByConnector(ctx context.Context, connectorID uuid.UUID, filter ConnectionFilter) ([]*entity.ConnectionView, error)

	// FindOwned returns one row owned by connectorID joined with the counterpart profile.
	FindOwned(ctx context.Context, connectorID, id uuid.UUID) (*entity.ConnectionView, error)

	// DeleteOwned removes one row owned by connectorID and returns it. The mirrored row is untouched.
	DeleteOwned(ctx context.Context, connectorID, id uuid.UUID) (*entity.Connection, error)
}
