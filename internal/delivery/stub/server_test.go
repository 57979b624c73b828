package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jalsetu/config"
	"jalsetu/internal/delivery/stub/handler"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/advisory"
	"jalsetu/internal/infra/assessment"
	"jalsetu/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startStub(t *testing.T, authProvider string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{Provider: authProvider, LocalSecret: testSecret}}
	cfg.ApplyDefaults()
	logger := discardLogger()

	e := NewEcho(cfg, logger, RouterParams{
		AssessmentHandler: handler.NewAssessmentHandler(logger),
		AdvisoryHandler:   handler.NewAdvisoryHandler(),
		TokenHandler:      handler.NewTokenHandler(cfg),
	})
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}

func endpoint(server *httptest.Server) *config.EndpointConfig {
	return &config.EndpointConfig{BaseURL: server.URL, Timeout: 2 * time.Second}
}

func TestStub_AssessThroughClient(t *testing.T) {
	server := startStub(t, config.AuthFirebase)

	api, err := assessment.NewClient(endpoint(server), discardLogger())
	require.NoError(t, err)

	resp, err := api.Assess(context.Background(), &entity.AssessmentRequest{
		Name:         "Home",
		Latitude:     28.6,
		Longitude:    77.2,
		NumDwellers:  4,
		RoofAreaSqm:  100,
		OpenSpaceSqm: 20,
		RoofType:     "concrete",
	})
	require.NoError(t, err)

	assert.InDelta(t, 25.6, resp.FeasibilityScore, 1e-9)
	assert.Equal(t, "Recharge pit", resp.Scores().RecommendedSolution)
	assert.NotEmpty(t, resp.FeasibilityInsights)
}

func TestStub_AssessValidationIsRemoteError(t *testing.T) {
	server := startStub(t, config.AuthFirebase)

	api, err := assessment.NewClient(endpoint(server), discardLogger())
	require.NoError(t, err)

	_, err = api.Assess(context.Background(), &entity.AssessmentRequest{Name: "Home", Latitude: 28.6, Longitude: 77.2})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRemote))
	assert.Contains(t, domainerrors.DisplayMessage(err), "NumDwellers")
}

func TestStub_MalformedBody(t *testing.T) {
	server := startStub(t, config.AuthFirebase)

	resp, err := http.Post(server.URL+"/assess", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", body.Detail)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestStub_RequestIDIsEchoed(t *testing.T) {
	server := startStub(t, config.AuthFirebase)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-Id"))
}

func TestStub_AdvisoryThroughClient(t *testing.T) {
	server := startStub(t, config.AuthFirebase)
	ctx := context.Background()

	api, err := advisory.NewClient(endpoint(server), discardLogger())
	require.NoError(t, err)

	crops, err := api.CropSuggestions(ctx, &service.CropQuery{SoilType: "loamy", Season: "rabi"})
	require.NoError(t, err)
	require.Len(t, crops, 3)
	assert.Equal(t, "Wheat", crops[0].Crop)
	assert.Equal(t, 0.9, crops[0].SuitabilityScore)

	prices, err := api.MarketPrices(ctx, &service.MarketQuery{Commodity: "Onion", Limit: 2})
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, 1800.0, prices[0].ModalPrice)

	vendors, err := api.Vendors(ctx, &service.VendorQuery{Query: "drip", Latitude: 28.6, Longitude: 77.2})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "v-001", vendors[0].ID)
	assert.Greater(t, vendors[0].DistanceKm, 0.0)

	plan, err := api.WaterManagement(ctx, &service.WaterQuery{Crop: "Wheat", FarmAreaAcres: 2, IrrigationSource: "borewell"})
	require.NoError(t, err)
	assert.Equal(t, "drip", plan.IrrigationMethod)
	assert.Equal(t, 36000.0, plan.DailyRequirementLiter)
}

func TestStub_UnknownSeason(t *testing.T) {
	server := startStub(t, config.AuthFirebase)

	api, err := advisory.NewClient(endpoint(server), discardLogger())
	require.NoError(t, err)

	_, err = api.CropSuggestions(context.Background(), &service.CropQuery{SoilType: "loamy", Season: "monsoon"})

	assert.True(t, errors.Is(err, domainerrors.ErrRemote))
	assert.Equal(t, "unknown season monsoon", domainerrors.DisplayMessage(err))
}

func TestStub_DevTokenSignsIn(t *testing.T) {
	server := startStub(t, config.AuthLocal)

	body, err := json.Marshal(handler.TokenRequest{UID: "u1", Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/dev/token", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token handler.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	assert.Equal(t, 3600, token.ExpiresIn)

	provider, err := auth.NewLocalIdentityProvider(testSecret, discardLogger())
	require.NoError(t, err)

	identity, err := provider.SignIn(context.Background(), token.IDToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UID)
	assert.Equal(t, "Asha", identity.DisplayName)
}

func TestStub_DevTokenOnlyWithLocalAuth(t *testing.T) {
	server := startStub(t, config.AuthFirebase)

	resp, err := http.Post(server.URL+"/dev/token", "application/json", bytes.NewBufferString(`{"uid":"u1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
