// Package geo renders located connections for map clients.
package geo

import (
	"time"

	"knect/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ConnectionMap builds a FeatureCollection with one Point per located connection. Connections
// without a coordinate are skipped. BBox is set only when at least one feature exists.
func ConnectionMap(views []*entity.ConnectionView) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	var bound orb.Bound
	for _, view := range views {
		coord := view.Location()
		if coord == nil || !coord.Valid() {
			continue
		}

		point := coord.Point()
		feature := geojson.NewFeature(point)
		feature.ID = view.ID.String()
		feature.Properties["connected_to_id"] = view.ConnectedToID.String()
		feature.Properties["full_name"] = view.FullName
		feature.Properties["job_title"] = view.JobTitle
		feature.Properties["met_at"] = view.MetAt.UTC().Format(time.RFC3339)
		if view.AvatarURL != nil {
			feature.Properties["avatar_url"] = *view.AvatarURL
		}

		if len(fc.Features) == 0 {
			bound = point.Bound()
		} else {
			bound = bound.Extend(point)
		}
		fc.Append(feature)
	}

	if len(fc.Features) > 0 {
		fc.BBox = geojson.NewBBox(bound)
	}

	return fc
}
