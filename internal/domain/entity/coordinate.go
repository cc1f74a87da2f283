package entity

import "github.com/paulmach/orb"

// Coordinate is a WGS84 position where a meeting happened.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate returns a pointer to a coordinate; nil means the location is unknown.
func NewCoordinate(lat, lng float64) *Coordinate {
	return &Coordinate{Latitude: lat, Longitude: lng}
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinate is inside WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
