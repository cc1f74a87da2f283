package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChangeType is the kind of mutation carried by a change event.
type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// ConnectionChange is a change-feed record for one connection row. ActorID is the user whose
// request caused the change.
type ConnectionChange struct {
	ID         string     `json:"id"`
	Type       ChangeType `json:"type"`
	Connection Connection `json:"connection"`
	ActorID    uuid.UUID  `json:"actor_id"`
	OccurredAt time.Time  `json:"occurred_at"`
	RequestID  string     `json:"request_id,omitempty"`
}
