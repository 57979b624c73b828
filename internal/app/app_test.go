package app

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"jalsetu/config"
	"jalsetu/internal/delivery/stub"
	"jalsetu/internal/delivery/stub/handler"
	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/domain/state"
	"jalsetu/internal/infra/auth"
	mockService "jalsetu/internal/mocks/service"
	"jalsetu/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const testSecret = "app-test-secret"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{
		RemoteStore: &config.RemoteStoreConfig{Provider: config.RemoteStoreMemory},
		Auth:        &config.AuthConfig{Provider: config.AuthLocal, LocalSecret: testSecret},
		Assessment:  &config.EndpointConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
		Advisory:    &config.EndpointConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
	}
	cfg.ApplyDefaults()

	return cfg
}

func TestModule_Validate(t *testing.T) {
	err := fx.ValidateApp(
		Module,
		fx.Provide(func() service.LocationPlatform { return nil }),
		fx.Invoke(func(usecase.AssessmentUsecase, usecase.SessionUsecase, usecase.DashboardUsecase, usecase.AdvisoryUsecase) {}),
	)

	require.NoError(t, err)
}

func TestCore_SignInOnboardAssessAndLoadDashboard(t *testing.T) {
	logger := discardLogger()
	stubCfg := testConfig("")
	server := httptest.NewServer(stub.NewEcho(stubCfg, logger, stub.RouterParams{
		AssessmentHandler: handler.NewAssessmentHandler(logger),
		AdvisoryHandler:   handler.NewAdvisoryHandler(),
	}))
	t.Cleanup(server.Close)

	platform := mockService.NewMockLocationPlatform(t)

	var (
		session    usecase.SessionUsecase
		profiles   usecase.ProfileUsecase
		assessment usecase.AssessmentUsecase
		dashboard  usecase.DashboardUsecase
	)
	app := fxtest.New(t,
		fx.Supply(testConfig(server.URL), logger),
		fx.Provide(
			context.Background,
			func() service.LocationPlatform { return platform },
		),
		Core,
		fx.Populate(&session, &profiles, &assessment, &dashboard),
	)
	app.RequireStart()
	defer app.RequireStop()

	ctx := context.Background()

	assert.False(t, session.CheckSession(ctx).Authenticated)
	assert.Equal(t, entity.SessionSignedOut, session.State().Phase)

	token, err := auth.IssueLocalToken(testSecret, &entity.Identity{UID: "u1", DisplayName: "Asha"}, time.Hour)
	require.NoError(t, err)

	status, err := session.CompleteSignIn(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatus{Authenticated: true, OnboardingRequired: true}, status)

	require.NoError(t, profiles.CompleteOnboarding(ctx, "u1", entity.SurfaceMain))
	assert.Equal(t, entity.SessionStatus{Authenticated: true}, session.CheckSession(ctx))

	report, err := assessment.RunAssessment(ctx, &usecase.FormInput{
		Name:      "Home",
		Dwellers:  "4",
		RoofArea:  "100",
		OpenSpace: "20",
		RoofType:  "concrete",
		Location:  entity.ManualLocation(28.6, 77.2, "Delhi"),
	})
	require.NoError(t, err)
	assert.InDelta(t, 25.6, report.FeasibilityScore, 1e-9)
	assert.Equal(t, "Delhi", report.Location)

	property, err := assessment.SaveAssessment(ctx, "u1", report, &usecase.PromoteOptions{PropertyType: "Residential"})
	require.NoError(t, err)
	require.NotNil(t, property)

	loaded := dashboard.Load(ctx, "u1")
	require.Equal(t, state.StatusSuccess, loaded.Status, loaded.Message)
	assert.Equal(t, "Asha", loaded.Data.Profile.DisplayName)
	assert.True(t, loaded.Data.Profile.OnboardingCompleted)
	require.Len(t, loaded.Data.Reports, 1)
	assert.Equal(t, report.ID, loaded.Data.Reports[0].ID)
	require.Len(t, loaded.Data.Properties, 1)
	assert.Equal(t, property.ID, loaded.Data.Properties[0].ID)
	assert.InDelta(t, 55250, loaded.Data.TotalHarvestingPotentialLiters, 1e-9)

	require.NoError(t, session.SignOut(ctx))
	assert.False(t, session.CheckSession(ctx).Authenticated)
}
