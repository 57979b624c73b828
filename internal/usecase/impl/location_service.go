package impl

import (
	"context"
	"log/slog"
	"time"

	"jalsetu/config"
	deliverycontext "jalsetu/internal/delivery/context"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/usecase"
)

// DefaultFixTimeout bounds location acquisition when no timeout is configured.
const DefaultFixTimeout = 10 * time.Second

type locationService struct {
	platform   service.LocationPlatform
	geocoder   service.ReverseGeocoder
	fixTimeout time.Duration
	logger     *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	platform service.LocationPlatform,
	geocoder service.ReverseGeocoder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	fixTimeout := DefaultFixTimeout
	if cfg.Location != nil && cfg.Location.FixTimeout > 0 {
		fixTimeout = cfg.Location.FixTimeout
	}

	return &locationService{
		platform:   platform,
		geocoder:   geocoder,
		fixTimeout: fixTimeout,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Acquire resolves the device position in two phases: the platform's cached
// fix, then exactly one live high-accuracy fix. Both share one timeout and the
// call returns when it expires even if the platform keeps running.
func (srv *locationService) Acquire(ctx context.Context) (*entity.Location, error) {
	fixCtx, cancel := context.WithTimeout(ctx, srv.fixTimeout)
	defer cancel()

	fix, source, err := srv.acquireFix(fixCtx)
	if err != nil {
		return nil, err
	}

	loc := &entity.Location{
		Latitude:       fix.Latitude,
		Longitude:      fix.Longitude,
		AccuracyMeters: fix.AccuracyMeters,
		Source:         source,
		FixedAt:        fix.Time,
	}

	address, err := srv.geocoder.ReverseGeocode(ctx, loc.Point())
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed, continuing without address",
			slog.Any("error", err),
		)
	} else {
		loc.Address = address
	}

	return loc, nil
}

func (srv *locationService) acquireFix(ctx context.Context) (*entity.Fix, entity.LocationSource, error) {
	fix, err := awaitFix(ctx, srv.platform.LastKnownFix)
	if errors.Is(err, domainerrors.ErrLocationPermissionDenied) {
		return nil, "", err
	}
	if err == nil && fix != nil {
		return fix, entity.LocationSourceCached, nil
	}
	if err != nil {
		srv.log(ctx).Debug("No cached location fix", slog.Any("error", err))
	}

	fix, err = awaitFix(ctx, func(ctx context.Context) (*entity.Fix, error) {
		return srv.platform.RequestFix(ctx, entity.FixRequest{
			Priority:   entity.FixPriorityHighAccuracy,
			MaxUpdates: 1,
		})
	})
	switch {
	case errors.Is(err, domainerrors.ErrLocationPermissionDenied):
		return nil, "", err
	case err != nil:
		srv.log(ctx).Warn("Live location fix failed", slog.Any("error", err))

		return nil, "", errors.WithStack(domainerrors.ErrLocationUnavailable.WithCause(err).WithDetails(err.Error()))
	case fix == nil:
		return nil, "", errors.WithStack(domainerrors.ErrLocationUnavailable.WithDetails("platform returned no fix"))
	}

	return fix, entity.LocationSourceLive, nil
}

// awaitFix runs fetch in its own goroutine and stops waiting when ctx is done.
// The result channel is buffered so a late platform answer never blocks.
func awaitFix(ctx context.Context, fetch func(context.Context) (*entity.Fix, error)) (*entity.Fix, error) {
	type result struct {
		fix *entity.Fix
		err error
	}

	done := make(chan result, 1)
	go func() {
		fix, err := fetch(ctx)
		done <- result{fix: fix, err: err}
	}()

	select {
	case r := <-done:
		return r.fix, r.err
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}
