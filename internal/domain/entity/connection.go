package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Connection is one directed edge "Connector met ConnectedTo". A meeting is always stored as two
// mirrored rows so that each user's list is self-contained.
type Connection struct {
	ID            uuid.UUID `json:"id"`
	ConnectorID   uuid.UUID `json:"connector_id"`
	ConnectedToID uuid.UUID `json:"connected_to_id"`
	MetAt         time.Time `json:"met_at"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
}

// Location returns the meeting coordinate, or nil when the location is unknown.
func (c *Connection) Location() *Coordinate {
	if c.Latitude == nil || c.Longitude == nil {
		return nil
	}

	return NewCoordinate(*c.Latitude, *c.Longitude)
}

// Mirror returns the counterpart edge with the same timestamp and an independent copy of the
// coordinate.
func (c *Connection) Mirror() Connection {
	return Connection{
		ConnectorID:   c.ConnectedToID,
		ConnectedToID: c.ConnectorID,
		MetAt:         c.MetAt,
		Latitude:      copyFloat(c.Latitude),
		Longitude:     copyFloat(c.Longitude),
	}
}

// IsMirrorOf reports whether c and other describe the same meeting seen from both sides.
func (c *Connection) IsMirrorOf(other *Connection) bool {
	return c.ConnectorID == other.ConnectedToID &&
		c.ConnectedToID == other.ConnectorID &&
		c.MetAt.Equal(other.MetAt) &&
		sameFloat(c.Latitude, other.Latitude) &&
		sameFloat(c.Longitude, other.Longitude)
}

// NewMutualPair builds the two rows of a meeting between a and b with equal metAt and coord.
func NewMutualPair(a, b uuid.UUID, metAt time.Time, coord *Coordinate) [2]Connection {
	first := Connection{
		ConnectorID:   a,
		ConnectedToID: b,
		MetAt:         metAt.UTC(),
	}
	if coord != nil {
		lat, lng := coord.Latitude, coord.Longitude
		first.Latitude = &lat
		first.Longitude = &lng
	}

	return [2]Connection{first, first.Mirror()}
}

// ConnectionView is a connection joined with the counterpart's public profile fields.
type ConnectionView struct {
	Connection
	FullName  string  `json:"full_name"`
	JobTitle  string  `json:"job_title"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// PairOutcome reports how a mutual upsert landed.
type PairOutcome struct {
	Pair             [2]Connection `json:"pair"`
	AlreadyConnected bool          `json:"already_connected"`
}

// Message is the confirmation shown to the scanner once the pair is stored.
func (o *PairOutcome) Message(counterpartName string) string {
	if o.AlreadyConnected {
		return fmt.Sprintf("You are already linked with %s. Meeting details updated.", counterpartName)
	}

	return fmt.Sprintf("You are now linked with %s.", counterpartName)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v

	return &out
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
