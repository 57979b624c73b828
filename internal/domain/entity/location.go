package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// LocationSource tells which acquisition phase produced a Location.
type LocationSource string

const (
	LocationSourceCached LocationSource = "cached"
	LocationSourceLive   LocationSource = "live"
	LocationSourceManual LocationSource = "manual"
)

// FixPriority is the accuracy/power trade-off requested from the platform.
type FixPriority int

const (
	FixPriorityBalanced FixPriority = iota
	FixPriorityHighAccuracy
)

// Fix is a raw platform position.
type Fix struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
	Time           time.Time
}

// FixRequest parameterizes a live location request.
type FixRequest struct {
	Priority   FixPriority
	MaxUpdates int
}

// Location is a resolved device position. Address is empty when reverse
// geocoding failed.
type Location struct {
	Latitude       float64
	Longitude      float64
	Address        string
	AccuracyMeters float64
	Source         LocationSource
	FixedAt        time.Time
}

// Point returns the position as an orb point (lon, lat).
func (l *Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// HasAddress reports whether reverse geocoding produced an address.
func (l *Location) HasAddress() bool {
	return l.Address != ""
}

// ManualLocation wraps coordinates and an address the caller already holds.
func ManualLocation(latitude, longitude float64, address string) *Location {
	return &Location{
		Latitude:  latitude,
		Longitude: longitude,
		Address:   address,
		Source:    LocationSourceManual,
	}
}
