package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// LocationUsecase resolves the device position.
type LocationUsecase interface {
	// Acquire tries the cached fix first, then exactly one bounded live fix.
	// The address is empty when reverse geocoding fails.
	Acquire(ctx context.Context) (*entity.Location, error)
}
