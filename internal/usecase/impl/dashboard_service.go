package impl

import (
	"context"
	"log/slog"

	deliverycontext "jalsetu/internal/delivery/context"
	"jalsetu/internal/domain/state"
	"jalsetu/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	profiles   usecase.ProfileUsecase
	reports    usecase.ReportUsecase
	properties usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	profiles usecase.ProfileUsecase,
	reports usecase.ReportUsecase,
	properties usecase.PropertyUsecase,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		profiles:   profiles,
		reports:    reports,
		properties: properties,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dashboardService) Load(ctx context.Context, uid string) state.State[usecase.DashboardData] {
	data, err := srv.load(ctx, uid)
	if err != nil {
		srv.log(ctx).Error("Failed to load dashboard", slog.String("uid", uid), slog.Any("error", err))
	}

	return state.From(data, err)
}

func (srv *dashboardService) load(ctx context.Context, uid string) (usecase.DashboardData, error) {
	var data usecase.DashboardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := srv.profiles.GetUserProfile(gctx, uid)
		data.Profile = profile

		return err
	})
	g.Go(func() error {
		reports, err := srv.reports.GetAll(gctx, uid)
		data.Reports = reports

		return err
	})
	g.Go(func() error {
		properties, err := srv.properties.GetAll(gctx, uid)
		data.Properties = properties

		return err
	})
	if err := g.Wait(); err != nil {
		return usecase.DashboardData{}, err
	}

	for _, property := range data.Properties {
		data.TotalHarvestingPotentialLiters += property.AnnualHarvestingPotentialLiters
	}

	return data, nil
}
