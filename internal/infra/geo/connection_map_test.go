package geo

import (
	"encoding/json"
	"testing"
	"time"

	"knect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view(name string, coord *entity.Coordinate) *entity.ConnectionView {
	pair := entity.NewMutualPair(uuid.New(), uuid.New(), time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), coord)
	conn := pair[0]
	conn.ID = uuid.New()

	return &entity.ConnectionView{Connection: conn, FullName: name, JobTitle: "Engineer"}
}

func TestConnectionMap_SkipsUnlocated(t *testing.T) {
	fc := ConnectionMap([]*entity.ConnectionView{
		view("Ada", entity.NewCoordinate(48.85, 2.35)),
		view("Bob", nil),
		view("Cy", entity.NewCoordinate(52.52, 13.40)),
	})

	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Ada", fc.Features[0].Properties["full_name"])
	assert.Equal(t, "Cy", fc.Features[1].Properties["full_name"])

	require.Len(t, fc.BBox, 4)
	assert.InDelta(t, 2.35, fc.BBox[0], 1e-9)
	assert.InDelta(t, 48.85, fc.BBox[1], 1e-9)
	assert.InDelta(t, 13.40, fc.BBox[2], 1e-9)
	assert.InDelta(t, 52.52, fc.BBox[3], 1e-9)
}

func TestConnectionMap_Empty(t *testing.T) {
	fc := ConnectionMap([]*entity.ConnectionView{view("Bob", nil)})

	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
}
