// Package pass encodes and decodes Knect Pass tokens, the text carried by a user's QR code.
package pass

import (
	"strings"

	domainerrors "knect/internal/domain/errors"

	"github.com/google/uuid"
)

// Prefix identifies a Knect Pass payload.
const Prefix = "knect://user/"

// Encode returns the pass token for an identity.
func Encode(id uuid.UUID) string {
	return Prefix + id.String()
}

// HasPrefix reports whether payload is shaped like a pass token.
func HasPrefix(payload string) bool {
	return strings.HasPrefix(payload, Prefix)
}

// Decode extracts the identity id from a scanned payload.
// A payload without the prefix is ErrInvalidToken. A remainder that is not an identity id can never
// match a profile, so it is reported as ErrUnknownUser.
func Decode(payload string) (uuid.UUID, error) {
	if !HasPrefix(payload) {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	id, err := uuid.Parse(strings.TrimSpace(strings.TrimPrefix(payload, Prefix)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domainerrors.ErrUnknownUser.WithDetails("malformed identity id")
	}

	return id, nil
}
