package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel mirrors the 'connections' table. Each row is one direction of a meeting and the
// (connector_id, connected_to_id) pair is unique.
type ConnectionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConnectorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_pair"`
	ConnectedToID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_pair"`
	MetAt         time.Time `gorm:"not null"`
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
