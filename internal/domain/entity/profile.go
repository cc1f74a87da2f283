package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the public card of an identity. It is keyed by the identity id and created on first write.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	JobTitle  string    `json:"job_title"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	Instagram string    `json:"instagram,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the name shown to other users, falling back to a placeholder for blank profiles.
func (p *Profile) DisplayName() string {
	if p == nil || strings.TrimSpace(p.FullName) == "" {
		return "Unknown"
	}

	return p.FullName
}

// Avatar returns the avatar URL or an empty string.
func (p *Profile) Avatar() string {
	if p == nil || p.AvatarURL == nil {
		return ""
	}

	return *p.AvatarURL
}
