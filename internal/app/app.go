// Package app assembles the assessment core with fx. The core is embedded:
// the host application adds Module to its own fx graph and supplies the
// device's service.LocationPlatform.
package app

import (
	"context"

	"jalsetu/config"
	"jalsetu/internal/infra/advisory"
	"jalsetu/internal/infra/assessment"
	"jalsetu/internal/infra/auth"
	"jalsetu/internal/infra/firebaseapp"
	"jalsetu/internal/infra/geocode"
	logs "jalsetu/internal/infra/log"
	"jalsetu/internal/infra/persistence/document"
	"jalsetu/internal/infra/remotestore"
	"jalsetu/internal/usecase/impl"

	"go.uber.org/fx"
)

// Module is the whole core, configuration and logging included.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	injectInfra(),
	Core,
)

// Core is the core without configuration, logger and context, for hosts and
// tests that provide their own.
//
//nolint:gochecknoglobals
var Core = fx.Options(
	injectStore(),
	injectRepo(),
	injectService(),
	injectUsecase(),
)

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectStore() fx.Option {
	return fx.Provide(
		firebaseapp.NewProvider,
		remotestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			document.NewReportRepository,
			document.NewPropertyRepository,
			document.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityProvider,
			assessment.New,
			advisory.New,
			geocode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewReportService,
			impl.NewPropertyService,
			impl.NewAssessmentService,
			impl.NewAdvisoryService,
			impl.NewDashboardService,
		),
	)
}
