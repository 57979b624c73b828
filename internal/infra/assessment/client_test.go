package assessment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jalsetu/config"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResponse = `{
  "location_info": {"city": "New Delhi", "district": "New Delhi", "state": "Delhi", "annual_rainfall_mm": 790},
  "feasibility_score": 82.0,
  "feasibility_insights": ["High rainfall", "Good roof area"],
  "rwh_analysis": {"annual_harvesting_potential_liters": 63200, "recommended_structure": ""},
  "ar_analysis": {"feasible": true, "recommended_structure": "Recharge pit"},
  "cost_benefit_analysis": {"estimated_cost_inr": 45000, "payback_period_years": 4.5}
}`

func createTestAPI(t *testing.T, handler http.HandlerFunc) service.AssessmentAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api, err := NewClient(&config.EndpointConfig{BaseURL: server.URL, Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return api
}

func TestAssess_Success(t *testing.T) {
	api := createTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assess", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Home", body["name"])
		assert.InDelta(t, 28.6, body["latitude"], 1e-9)
		assert.InDelta(t, 4, body["num_dwellers"], 1e-9)
		assert.InDelta(t, 100, body["roof_area_sqm"], 1e-9)
		assert.Equal(t, "concrete", body["roof_type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fullResponse))
	})

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

	assert.Equal(t, 82.0, resp.FeasibilityScore)
	assert.Equal(t, "Delhi", resp.LocationInfo.State)
	assert.Len(t, resp.FeasibilityInsights, 2)
	assert.True(t, resp.ARAnalysis.Feasible)

	scores := resp.Scores()
	assert.Equal(t, "Recharge pit", scores.RecommendedSolution)
	assert.Equal(t, 63200.0, scores.AnnualHarvestingPotentialLiters)
	assert.Equal(t, 45000.0, scores.EstimatedCostInr)
}

func TestAssess_AbsentFieldsAreZero(t *testing.T) {
	api := createTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"feasibility_score": 12.5}`))
	})

	resp, err := api.Assess(context.Background(), &entity.AssessmentRequest{Name: "x"})
	require.NoError(t, err)

	assert.Equal(t, 12.5, resp.FeasibilityScore)
	assert.Empty(t, resp.Scores().RecommendedSolution)
	assert.Zero(t, resp.CostBenefitAnalysis.EstimatedCostInr)
}

func TestAssess_RemoteError(t *testing.T) {
	api := createTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "Coordinates outside India"}`))
	})

	_, err := api.Assess(context.Background(), &entity.AssessmentRequest{Name: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrRemote))
	assert.Equal(t, "Coordinates outside India", domainerrors.DisplayMessage(err))
}

func TestAssess_CanceledContext(t *testing.T) {
	release := make(chan struct{})
	api := createTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.Assess(ctx, &entity.AssessmentRequest{Name: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Params{
		Config: &config.Config{Assessment: &config.EndpointConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
