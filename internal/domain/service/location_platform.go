package service

import (
	"context"

	"jalsetu/internal/domain/entity"

	"github.com/paulmach/orb"
)

// LocationPlatform is the device location service.
type LocationPlatform interface {
	// LastKnownFix returns the platform's cached fix, or nil when there is none.
	LastKnownFix(ctx context.Context) (*entity.Fix, error)

	// RequestFix asks for live updates and returns the first one. It should
	// return when ctx is done, but callers must not rely on it.
	RequestFix(ctx context.Context, req entity.FixRequest) (*entity.Fix, error)
}

// ReverseGeocoder turns coordinates into a display address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, point orb.Point) (string, error)
}
