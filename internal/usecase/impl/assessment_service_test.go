package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jalsetu/config"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/assessment"
	"jalsetu/internal/infra/persistence/document"
	"jalsetu/internal/infra/remotestore/memory"
	mockService "jalsetu/internal/mocks/service"
	"jalsetu/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 7, 1, 9, 30, 0, 123_456_789, time.UTC)

// assessmentServiceFixtures holds all test dependencies for assessment service tests.
type assessmentServiceFixtures struct {
	service  *assessmentService
	api      *mockService.MockAssessmentAPI
	platform *mockService.MockLocationPlatform
	geocoder *mockService.MockReverseGeocoder
	store    memory.Store
}

func createTestAssessmentService(t *testing.T) assessmentServiceFixtures {
	api := mockService.NewMockAssessmentAPI(t)
	fx := newAssessmentFixtures(t, api)
	fx.api = api

	return fx
}

// newAssessmentFixtures wires the service over a memory store and mocked device location.
func newAssessmentFixtures(t *testing.T, api service.AssessmentAPI) assessmentServiceFixtures {
	logger := discardLogger()
	platform := mockService.NewMockLocationPlatform(t)
	geocoder := mockService.NewMockReverseGeocoder(t)
	store := memory.NewStore()

	cfg := &config.Config{Location: &config.LocationConfig{FixTimeout: time.Second}}
	location := NewLocationService(platform, geocoder, cfg, logger)
	reports := NewReportService(document.NewReportRepository(store, logger), logger)
	properties := NewPropertyService(document.NewPropertyRepository(store, logger), logger)

	srv := NewAssessmentService(location, api, reports, properties, logger).(*assessmentService)
	srv.now = func() time.Time { return fixedNow }

	return assessmentServiceFixtures{
		service:  srv,
		platform: platform,
		geocoder: geocoder,
		store:    store,
	}
}

func validForm() *usecase.FormInput {
	return &usecase.FormInput{
		Name:      "Home",
		Dwellers:  "4",
		RoofArea:  "100",
		OpenSpace: "20",
		RoofType:  "concrete",
		Location:  entity.ManualLocation(28.6, 77.2, "Delhi"),
	}
}

func scoredResponse(score float64) *entity.AssessmentResponse {
	return &entity.AssessmentResponse{
		FeasibilityScore: score,
		RWHAnalysis: entity.RWHAnalysis{
			AnnualHarvestingPotentialLiters: 63200.5,
			RecommendedStructure:            "Storage tank",
		},
		CostBenefitAnalysis: entity.CostBenefitAnalysis{EstimatedCostInr: 45000},
	}
}

func TestAssessmentService_ValidationFailsWithoutIO(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.FormInput)
	}{
		{name: "blank name", mutate: func(in *usecase.FormInput) { in.Name = "   " }},
		{name: "non-numeric dwellers", mutate: func(in *usecase.FormInput) { in.Dwellers = "four" }},
		{name: "fractional dwellers", mutate: func(in *usecase.FormInput) { in.Dwellers = "4.5" }},
		{name: "zero dwellers", mutate: func(in *usecase.FormInput) { in.Dwellers = "0" }},
		{name: "blank dwellers", mutate: func(in *usecase.FormInput) { in.Dwellers = "" }},
		{name: "negative roof area", mutate: func(in *usecase.FormInput) { in.RoofArea = "-1" }},
		{name: "NaN roof area", mutate: func(in *usecase.FormInput) { in.RoofArea = "NaN" }},
		{name: "infinite open space", mutate: func(in *usecase.FormInput) { in.OpenSpace = "+Inf" }},
		{name: "unparsable open space", mutate: func(in *usecase.FormInput) { in.OpenSpace = "20m2" }},
		{name: "zero latitude", mutate: func(in *usecase.FormInput) { in.Location = entity.ManualLocation(0, 77.2, "Delhi") }},
		{name: "zero longitude", mutate: func(in *usecase.FormInput) { in.Location = entity.ManualLocation(28.6, 0, "Delhi") }},
		{name: "placeholder address", mutate: func(in *usecase.FormInput) {
			in.Location = entity.ManualLocation(28.6, 77.2, "Location unavailable")
		}},
		{name: "placeholder address any case", mutate: func(in *usecase.FormInput) {
			in.Location = entity.ManualLocation(28.6, 77.2, "  FETCHING LOCATION...  ")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAssessmentService(t)
			input := validForm()
			tt.mutate(input)

			report, err := fx.service.RunAssessment(context.Background(), input)

			assert.Nil(t, report)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput), "got %v", err)
			fx.api.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything)
			fx.platform.AssertNotCalled(t, "LastKnownFix", mock.Anything)
		})
	}
}

func TestAssessmentService_RunAssessment_SuppliedLocation(t *testing.T) {
	fx := createTestAssessmentService(t)
	ctx := context.Background()

	fx.api.EXPECT().
		Assess(ctx, &entity.AssessmentRequest{
			Name:         "Home",
			Latitude:     28.6,
			Longitude:    77.2,
			NumDwellers:  4,
			RoofAreaSqm:  100,
			OpenSpaceSqm: 20,
			RoofType:     "concrete",
		}).
		Return(scoredResponse(82), nil)

	report, err := fx.service.RunAssessment(ctx, validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "Delhi", report.Location)
	assert.Equal(t, 82.0, report.FeasibilityScore)
	assert.Equal(t, "Storage tank", report.RecommendedSolution)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), report.Timestamp)
	assert.Empty(t, fx.store.Writes(), "running an assessment persists nothing")
}

func TestAssessmentService_RunAssessment_AcquiresLocation(t *testing.T) {
	fx := createTestAssessmentService(t)
	ctx := context.Background()
	input := validForm()
	input.Location = nil

	fx.platform.EXPECT().LastKnownFix(mock.Anything).Return(&entity.Fix{Latitude: 19.07, Longitude: 72.87}, nil)
	fx.geocoder.EXPECT().ReverseGeocode(ctx, mock.Anything).Return("", errors.New("geocoder down"))
	fx.api.EXPECT().
		Assess(ctx, mock.MatchedBy(func(req *entity.AssessmentRequest) bool {
			return req.Latitude == 19.07 && req.Longitude == 72.87
		})).
		Return(scoredResponse(70), nil)

	report, err := fx.service.RunAssessment(ctx, input)
	require.NoError(t, err)

	assert.Empty(t, report.Location)
	assert.Equal(t, 19.07, report.Latitude)
}

func TestAssessmentService_RunAssessment_LocationUnavailable(t *testing.T) {
	fx := createTestAssessmentService(t)
	input := validForm()
	input.Location = nil

	fx.platform.EXPECT().LastKnownFix(mock.Anything).Return(nil, nil)
	fx.platform.EXPECT().RequestFix(mock.Anything, mock.Anything).Return(nil, errors.New("no provider"))

	_, err := fx.service.RunAssessment(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrLocationUnavailable))
	fx.api.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything)
}

func TestAssessmentService_RunAssessment_AllowMissingLocation(t *testing.T) {
	fx := createTestAssessmentService(t)
	ctx := context.Background()
	input := validForm()
	input.Location = nil
	input.AllowMissingLocation = true

	fx.platform.EXPECT().LastKnownFix(mock.Anything).Return(nil, domainerrors.ErrLocationPermissionDenied)
	fx.api.EXPECT().
		Assess(ctx, mock.MatchedBy(func(req *entity.AssessmentRequest) bool {
			return req.Latitude == 0 && req.Longitude == 0
		})).
		Return(scoredResponse(40), nil)

	report, err := fx.service.RunAssessment(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 40.0, report.FeasibilityScore)
}

func TestAssessmentService_RunAssessment_RemoteError(t *testing.T) {
	fx := createTestAssessmentService(t)

	fx.api.EXPECT().Assess(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewRemoteError("Invalid coordinates", "status 422"))

	_, err := fx.service.RunAssessment(context.Background(), validForm())

	assert.True(t, errors.Is(err, domainerrors.ErrRemote))
	assert.Equal(t, "Invalid coordinates", domainerrors.DisplayMessage(err))
}

func TestAssessmentService_Promote(t *testing.T) {
	fx := createTestAssessmentService(t)
	fx.service.newID = func() (string, error) { return "p-1", nil }

	report := &entity.Report{
		ID:        "r-1",
		Name:      "Home",
		Location:  "Delhi",
		Latitude:  28.6,
		Longitude: 77.2,
		Dwellers:  4,
		RoofArea:  100.25,
		OpenSpace: 20,
		Timestamp: time.UnixMilli(1_751_362_200_123),
		Scores: entity.Scores{
			FeasibilityScore:                82.000000001,
			AnnualHarvestingPotentialLiters: 63200.5,
			RecommendedSolution:             "Recharge pit",
			EstimatedCostInr:                45000.75,
		},
	}

	property, err := fx.service.Promote(report, usecase.PromoteOptions{})
	require.NoError(t, err)

	assert.Equal(t, "p-1", property.ID)
	assert.Equal(t, entity.DefaultPropertyType, property.PropertyType)
	assert.Equal(t, report.Scores, property.Scores)
	assert.True(t, report.Timestamp.Equal(property.LastAssessmentDate))
	assert.Equal(t, "Delhi", property.Address)
	assert.Equal(t, report.RoofArea, property.RoofArea)

	typed, err := fx.service.Promote(report, usecase.PromoteOptions{PropertyType: "Commercial"})
	require.NoError(t, err)
	assert.Equal(t, "Commercial", typed.PropertyType)
}

func TestAssessmentService_PromoteRejectsIncompleteReport(t *testing.T) {
	fx := createTestAssessmentService(t)

	_, err := fx.service.Promote(nil, usecase.PromoteOptions{})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = fx.service.Promote(&entity.Report{ID: "r-1"}, usecase.PromoteOptions{})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAssessmentService_Reassess(t *testing.T) {
	fx := createTestAssessmentService(t)
	ctx := context.Background()
	property := &entity.Property{
		ID:                 "p-1",
		Name:               "Home",
		Latitude:           28.6,
		Longitude:          77.2,
		Dwellers:           4,
		RoofArea:           100,
		OpenSpace:          20,
		LastAssessmentDate: time.UnixMilli(1),
		Scores:             entity.Scores{FeasibilityScore: 10},
	}

	fx.api.EXPECT().
		Assess(ctx, &entity.AssessmentRequest{
			Name: "Home", Latitude: 28.6, Longitude: 77.2, NumDwellers: 4, RoofAreaSqm: 100, OpenSpaceSqm: 20,
		}).
		Return(scoredResponse(91), nil)

	got, err := fx.service.Reassess(ctx, property)
	require.NoError(t, err)

	assert.Equal(t, "p-1", got.ID)
	assert.Equal(t, 91.0, got.FeasibilityScore)
	assert.Equal(t, 45000.0, got.EstimatedCostInr)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), got.LastAssessmentDate)
}

func TestAssessmentService_ReassessFailureLeavesPropertyUntouched(t *testing.T) {
	fx := createTestAssessmentService(t)
	property := &entity.Property{ID: "p-1", Name: "Home", Latitude: 28.6, Longitude: 77.2, Dwellers: 4,
		Scores: entity.Scores{FeasibilityScore: 10}}

	fx.api.EXPECT().Assess(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewNetworkError(errors.New("timeout"), "POST assess"))

	_, err := fx.service.Reassess(context.Background(), property)

	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.Equal(t, 10.0, property.FeasibilityScore)
}

func TestAssessmentService_ReassessRejectsUnlocatedProperty(t *testing.T) {
	fx := createTestAssessmentService(t)

	_, err := fx.service.Reassess(context.Background(), &entity.Property{ID: "p-1", Dwellers: 4})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAssessmentService_AssessProperty(t *testing.T) {
	fx := createTestAssessmentService(t)

	fx.api.EXPECT().Assess(mock.Anything, mock.Anything).Return(scoredResponse(77), nil)

	property, err := fx.service.AssessProperty(context.Background(), &usecase.PropertyInput{
		FormInput:    *validForm(),
		PropertyType: "Institutional",
	})
	require.NoError(t, err)

	assert.Equal(t, "Institutional", property.PropertyType)
	assert.Equal(t, 77.0, property.FeasibilityScore)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), property.LastAssessmentDate)
	assert.Empty(t, fx.store.Writes())
}

func TestAssessmentService_SaveAssessment_ReportThenProperty(t *testing.T) {
	fx := createTestAssessmentService(t)
	ctx := context.Background()
	report := testReport("r-1", time.UnixMilli(1_751_362_200_000), 82)

	property, err := fx.service.SaveAssessment(ctx, "u1", report, &usecase.PromoteOptions{})
	require.NoError(t, err)

	writes := fx.store.Writes()
	require.Len(t, writes, 2)
	assert.Equal(t, "users/u1/reports/r-1", writes[0].Path)
	assert.Equal(t, "users/u1/properties/"+property.ID, writes[1].Path)
}

func TestAssessmentService_SaveAssessment_ReportOnly(t *testing.T) {
	fx := createTestAssessmentService(t)

	property, err := fx.service.SaveAssessment(context.Background(), "u1",
		testReport("r-1", time.UnixMilli(1), 82), nil)
	require.NoError(t, err)

	assert.Nil(t, property)
	assert.Len(t, fx.store.Writes(), 1)
}

func TestAssessmentService_SaveAssessment_NoPropertyWhenReportFails(t *testing.T) {
	fx := createTestAssessmentService(t)

	_, err := fx.service.SaveAssessment(context.Background(), "u1",
		testReport("bad/id", time.UnixMilli(1), 82), &usecase.PromoteOptions{})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.Empty(t, fx.store.Writes())
}

func TestAssessmentService_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Home", body["name"])
		assert.Equal(t, 4.0, body["num_dwellers"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"feasibility_score": 82.0}`))
	}))
	t.Cleanup(server.Close)

	api, err := assessment.NewClient(&config.EndpointConfig{BaseURL: server.URL, Timeout: time.Second}, discardLogger())
	require.NoError(t, err)

	fx := newAssessmentFixtures(t, api)
	ctx := context.Background()

	report, err := fx.service.RunAssessment(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, 82.0, report.FeasibilityScore)
	assert.NotEmpty(t, report.ID)

	_, err = fx.service.SaveAssessment(ctx, "u1", report, nil)
	require.NoError(t, err)

	writes := fx.store.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, memory.Write{Op: memory.OpSet, Path: "users/u1/reports/" + report.ID}, writes[0])

	stored, err := fx.service.reports.GetOne(ctx, "u1", report.ID)
	require.NoError(t, err)
	assert.Equal(t, 82.0, stored.FeasibilityScore)
	assert.Equal(t, "Delhi", stored.Location)
}
