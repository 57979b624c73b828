package usecase

import (
	"context"

	"jalsetu/internal/domain/service"
)

// AdvisoryUsecase serves the farming advisory screens.
type AdvisoryUsecase interface {
	SuggestCrops(ctx context.Context, query *service.CropQuery) ([]service.CropSuggestion, error)
	MarketPrices(ctx context.Context, query *service.MarketQuery) ([]service.MarketPrice, error)
	SearchVendors(ctx context.Context, query *service.VendorQuery) ([]service.Vendor, error)
	WaterPlan(ctx context.Context, query *service.WaterQuery) (*service.WaterPlan, error)

	// SuggestCropsForProfile builds the crop query from the user's farm profile.
	SuggestCropsForProfile(ctx context.Context, uid string) ([]service.CropSuggestion, error)
}
