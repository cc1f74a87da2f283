// Package location resolves where a meeting happened without letting GPS latency stall the caller.
package location

import (
	"context"
	"log/slog"
	"time"

	"knect/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds the wait for a fresh fix.
const DefaultTimeout = 5 * time.Second

// Display region spans used by the map view around a fix.
const (
	LatitudeDelta  = 0.0922
	LongitudeDelta = 0.0421
)

// Accuracy is the precision requested from the position provider.
type Accuracy int

const (
	AccuracyLowest Accuracy = iota + 1
	AccuracyLow
	AccuracyBalanced
	AccuracyHigh
)

// Fix is a position reading. Point is longitude first, like every orb geometry.
type Fix struct {
	Point    orb.Point
	Accuracy float64 // meters, 0 when unknown
	At       time.Time
}

// Coordinate converts the fix for storage on a connection.
func (f *Fix) Coordinate() *entity.Coordinate {
	if f == nil {
		return nil
	}

	return entity.NewCoordinate(f.Point.Lat(), f.Point.Lon())
}

// Permissions asks the user for foreground location access.
type Permissions interface {
	RequestForeground(ctx context.Context) (bool, error)
}

// Provider reads positions from the device.
type Provider interface {
	// LastKnown returns a cached fix, or nil when the device has none.
	LastKnown(ctx context.Context) (*Fix, error)
	// CurrentPosition requests a fresh fix. It may never return before ctx ends.
	CurrentPosition(ctx context.Context, accuracy Accuracy) (*Fix, error)
}

// Params configures a Resolver.
type Params struct {
	Permissions Permissions
	Provider    Provider
	Timeout     time.Duration
	Logger      *slog.Logger
}

// Resolver races a fresh fix against a fixed timeout.
type Resolver struct {
	permissions Permissions
	provider    Provider
	timeout     time.Duration
	logger      *slog.Logger
}

// NewResolver returns a Resolver; a non-positive timeout selects DefaultTimeout.
func NewResolver(params Params) *Resolver {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		permissions: params.Permissions,
		provider:    params.Provider,
		timeout:     timeout,
		logger:      logger,
	}
}

type reading struct {
	fix *Fix
	err error
}

// Resolve returns the best position available within the timeout, or nil when the location is
// unknown. It never fails and never waits longer than the timeout for the device.
func (r *Resolver) Resolve(ctx context.Context) (fix *Fix) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("Location resolution panicked", slog.Any("panic", rec))
			fix = nil
		}
	}()

	granted, err := r.permissions.RequestForeground(ctx)
	if err != nil {
		r.logger.Debug("Location permission request failed", slog.Any("error", err))

		return nil
	}
	if !granted {
		return nil
	}

	// Both device calls are cancelled once a winner is picked, so the loser has no later effect.
	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	fallbackCh := make(chan *Fix, 1)
	go func() {
		f, err := r.read(raceCtx, r.provider.LastKnown)
		if err != nil {
			f = nil
		}
		fallbackCh <- f
	}()

	freshCh := make(chan reading, 1)
	go func() {
		f, err := r.read(raceCtx, func(ctx context.Context) (*Fix, error) {
			return r.provider.CurrentPosition(ctx, AccuracyBalanced)
		})
		freshCh <- reading{fix: f, err: err}
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	var fallback *Fix
	for {
		select {
		case f := <-fallbackCh:
			fallback = f
			fallbackCh = nil
		case res := <-freshCh:
			if res.err == nil && res.fix != nil {
				return res.fix
			}
			r.logger.Debug("Fresh location fix failed", slog.Any("error", res.err))

			return pickFallback(fallback, fallbackCh)
		case <-timer.C:
			r.logger.Debug("Fresh location fix timed out", slog.Duration("timeout", r.timeout))

			return pickFallback(fallback, fallbackCh)
		case <-ctx.Done():
			return pickFallback(fallback, fallbackCh)
		}
	}
}

// read calls the provider and turns a panic into an error.
func (r *Resolver) read(ctx context.Context, call func(context.Context) (*Fix, error)) (fix *Fix, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			fix, err = nil, errors.Errorf("location provider panicked: %v", rec)
		}
	}()

	return call(ctx)
}

// pickFallback returns the cached fix if it has already arrived.
func pickFallback(fallback *Fix, pending <-chan *Fix) *Fix {
	if fallback != nil || pending == nil {
		return fallback
	}

	select {
	case f := <-pending:
		return f
	default:
		return nil
	}
}

// Region returns the display region centred on fix, or an empty bound for an unknown location.
func Region(fix *Fix) orb.Bound {
	if fix == nil {
		return orb.Bound{}
	}

	half := orb.Point{LongitudeDelta / 2, LatitudeDelta / 2}

	return orb.Bound{
		Min: orb.Point{fix.Point.Lon() - half.Lon(), fix.Point.Lat() - half.Lat()},
		Max: orb.Point{fix.Point.Lon() + half.Lon(), fix.Point.Lat() + half.Lat()},
	}
}

// ErrNoPosition is returned by providers that cannot produce a fix.
var ErrNoPosition = errors.New("no position available")
