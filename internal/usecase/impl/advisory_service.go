package impl

import (
	"context"
	"log/slog"

	deliverycontext "jalsetu/internal/delivery/context"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/usecase"
)

type advisoryService struct {
	api      service.AdvisoryAPI
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// NewAdvisoryService creates a new advisory service instance
func NewAdvisoryService(api service.AdvisoryAPI, profiles usecase.ProfileUsecase, logger *slog.Logger) usecase.AdvisoryUsecase {
	return &advisoryService{
		api:      api,
		profiles: profiles,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *advisoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *advisoryService) SuggestCrops(ctx context.Context, query *service.CropQuery) ([]service.CropSuggestion, error) {
	if query == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("crop query is required"))
	}

	suggestions, err := srv.api.CropSuggestions(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Crop suggestion failed", slog.String("season", query.Season), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to suggest crops")
	}

	return suggestions, nil
}

func (srv *advisoryService) MarketPrices(ctx context.Context, query *service.MarketQuery) ([]service.MarketPrice, error) {
	if query == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("market query is required"))
	}

	prices, err := srv.api.MarketPrices(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Market price lookup failed", slog.String("commodity", query.Commodity), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get market prices")
	}

	return prices, nil
}

func (srv *advisoryService) SearchVendors(ctx context.Context, query *service.VendorQuery) ([]service.Vendor, error) {
	if query == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("vendor query is required"))
	}

	vendors, err := srv.api.Vendors(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Vendor search failed", slog.String("query", query.Query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search vendors")
	}

	return vendors, nil
}

func (srv *advisoryService) WaterPlan(ctx context.Context, query *service.WaterQuery) (*service.WaterPlan, error) {
	if query == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("water query is required"))
	}

	plan, err := srv.api.WaterManagement(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Water plan failed", slog.String("crop", query.Crop), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get water plan")
	}

	return plan, nil
}

func (srv *advisoryService) SuggestCropsForProfile(ctx context.Context, uid string) ([]service.CropSuggestion, error) {
	profile, err := srv.profiles.GetGraminProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	return srv.SuggestCrops(ctx, &service.CropQuery{
		SoilType:         profile.SoilType,
		Season:           profile.CurrentSeason,
		IrrigationSource: profile.IrrigationSource,
		FarmAreaAcres:    profile.FarmAreaAcres,
		Language:         profile.Language,
	})
}
