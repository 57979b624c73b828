package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_DelhiHome(t *testing.T) {
	resp := Score(&AssessRequest{
		Name:         "Home",
		Latitude:     28.6,
		Longitude:    77.2,
		NumDwellers:  4,
		RoofAreaSqm:  100,
		OpenSpaceSqm: 20,
		RoofType:     "concrete",
	})

	assert.InDelta(t, 25.6, resp.FeasibilityScore, 1e-9)
	assert.InDelta(t, 55250, resp.RWHAnalysis.AnnualHarvestingPotentialLiters, 1e-9)
	assert.InDelta(t, 197100, resp.RWHAnalysis.AnnualWaterDemandLiters, 1e-9)
	assert.Equal(t, "Recharge pit", resp.RWHAnalysis.RecommendedStructure)
	assert.True(t, resp.ARAnalysis.Feasible)
	assert.InDelta(t, 3900, resp.ARAnalysis.RechargePotentialLiters, 1e-9)
	assert.InDelta(t, 59200, resp.CostBenefitAnalysis.EstimatedCostInr, 1e-9)
	assert.InDelta(t, 21.4, resp.CostBenefitAnalysis.PaybackPeriodYears, 1e-9)
	assert.True(t, resp.CostBenefitAnalysis.SubsidyAvailable)
	assert.Equal(t, 650.0, resp.LocationInfo.AnnualRainfallMm)
}

func TestScore_LargeRoofCoversDemand(t *testing.T) {
	resp := Score(&AssessRequest{
		Name:         "School",
		Latitude:     12.97,
		Longitude:    77.59,
		NumDwellers:  2,
		RoofAreaSqm:  500,
		OpenSpaceSqm: 5,
		RoofType:     "TIN",
	})

	assert.Equal(t, 0.9, resp.RWHAnalysis.RunoffCoefficient)
	assert.Equal(t, 100.0, resp.RWHAnalysis.DemandMetPercentage)
	assert.Equal(t, "Storage tank", resp.RWHAnalysis.RecommendedStructure)
	assert.False(t, resp.ARAnalysis.Feasible)
	assert.LessOrEqual(t, resp.FeasibilityScore, 100.0)
	assert.Contains(t, resp.FeasibilityInsights, "Open space is too small for a recharge structure")
}

func TestScore_UnknownRoofUsesDefaultRunoff(t *testing.T) {
	resp := Score(&AssessRequest{Name: "Shed", Latitude: 20, Longitude: 78, NumDwellers: 1, RoofAreaSqm: 10})

	assert.Equal(t, defaultRunoff, resp.RWHAnalysis.RunoffCoefficient)
	assert.Equal(t, "moderate", resp.LocationInfo.RainfallIntensity)
}
