package usecase

import (
	"context"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// ScanInput is a scanned pass payload plus the coordinate the scanning device resolved, if any.
type ScanInput struct {
	Payload    string
	Coordinate *entity.Coordinate
}

// ScanOutput is the outcome of a server-side scan.
type ScanOutput struct {
	Counterpart      *entity.Profile      `json:"counterpart"`
	Pair             [2]entity.Connection `json:"pair"`
	AlreadyConnected bool                 `json:"already_connected"`
	Message          string               `json:"message"`
}

// ConnectionUsecase defines operations on the caller's connection graph.
type ConnectionUsecase interface {
	// List returns the caller's connections, newest first, optionally filtered by name or title.
	List(ctx context.Context, userID uuid.UUID, query string) ([]*entity.ConnectionView, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.ConnectionView, error)
	// UpsertPair commits a mirrored pair in which the caller is the connector of one row.
	UpsertPair(ctx context.Context, userID uuid.UUID, pair [2]entity.Connection) (*entity.PairOutcome, error)
	// Scan runs the pass protocol on behalf of a thin client.
	Scan(ctx context.Context, userID uuid.UUID, input ScanInput) (*ScanOutput, error)
	// Delete removes one of the caller's own rows. The counterpart's row is kept.
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Map(ctx context.Context, userID uuid.UUID) (*geojson.FeatureCollection, error)
	// Changes streams change events for rows the caller owns until ctx ends.
	Changes(ctx context.Context, userID uuid.UUID) (<-chan entity.ConnectionChange, func())
}
