package pass

import (
	"testing"

	domainerrors "knect/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	id := uuid.New()

	token := Encode(id)
	assert.Equal(t, "knect://user/"+id.String(), token)

	decoded, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"empty payload", "", domainerrors.ErrInvalidToken},
		{"foreign url", "https://example.com/user/abc", domainerrors.ErrInvalidToken},
		{"wrong case scheme", "KNECT://user/" + uuid.NewString(), domainerrors.ErrInvalidToken},
		{"missing id", "knect://user/", domainerrors.ErrUnknownUser},
		{"garbage id", "knect://user/not-an-id", domainerrors.ErrUnknownUser},
		{"nil id", "knect://user/" + uuid.Nil.String(), domainerrors.ErrUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Decode(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
