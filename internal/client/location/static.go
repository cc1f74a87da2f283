package location

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// StaticPermissions answers every permission request with the same decision.
type StaticPermissions bool

// RequestForeground implements Permissions.
func (p StaticPermissions) RequestForeground(context.Context) (bool, error) {
	return bool(p), nil
}

// StaticProvider reports a fixed position, for hosts without a positioning device.
// A nil position makes the provider fail every fresh request.
type StaticProvider struct {
	position *orb.Point
}

// NewStaticProvider returns a provider for lat/lng, or one without a position when either is nil.
func NewStaticProvider(lat, lng *float64) *StaticProvider {
	if lat == nil || lng == nil {
		return &StaticProvider{}
	}

	return &StaticProvider{position: &orb.Point{*lng, *lat}}
}

// LastKnown implements Provider.
func (p *StaticProvider) LastKnown(context.Context) (*Fix, error) {
	return p.fix(), nil
}

// CurrentPosition implements Provider.
func (p *StaticProvider) CurrentPosition(ctx context.Context, _ Accuracy) (*Fix, error) {
	if p.position == nil {
		return nil, ErrNoPosition
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return p.fix(), nil
}

func (p *StaticProvider) fix() *Fix {
	if p.position == nil {
		return nil
	}

	return &Fix{Point: *p.position, At: time.Now()}
}
