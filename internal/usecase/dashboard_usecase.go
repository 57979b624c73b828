package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/state"
)

// DashboardData is everything the main dashboard shows.
type DashboardData struct {
	Profile    *entity.UserProfile
	Reports    []*entity.Report
	Properties []*entity.Property

	// TotalHarvestingPotentialLiters sums the annual potential over all properties.
	TotalHarvestingPotentialLiters float64
}

// DashboardUsecase loads the dashboard.
type DashboardUsecase interface {
	// Load reads profile, reports and properties concurrently. Any failure,
	// a missing profile included, yields an error state.
	Load(ctx context.Context, uid string) state.State[DashboardData]
}
