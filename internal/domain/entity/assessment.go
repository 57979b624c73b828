package entity

// AssessmentRequest is the input sent to the remote assessment service.
type AssessmentRequest struct {
	Name         string
	Latitude     float64
	Longitude    float64
	NumDwellers  int
	RoofAreaSqm  float64
	OpenSpaceSqm float64
	RoofType     string
}

// AssessmentResponse is the feasibility analysis returned by the assessment service.
// Absent numeric fields are zero.
type AssessmentResponse struct {
	LocationInfo        LocationInfo
	FeasibilityScore    float64 // 0-100
	FeasibilityInsights []string
	RWHAnalysis         RWHAnalysis
	ARAnalysis          ARAnalysis
	CostBenefitAnalysis CostBenefitAnalysis
}

// LocationInfo describes the hydro-geological context of the assessed site.
type LocationInfo struct {
	City               string
	District           string
	State              string
	AnnualRainfallMm   float64
	GroundwaterDepthM  float64
	SoilType           string
	AquiferType        string
	RainfallIntensity  string
	PrincipalAquifer   string
	GroundwaterQuality string
}

// RWHAnalysis is the rooftop rainwater-harvesting part of the analysis.
type RWHAnalysis struct {
	RunoffCoefficient               float64
	AnnualHarvestingPotentialLiters float64
	AnnualWaterDemandLiters         float64
	DemandMetPercentage             float64
	RecommendedTankCapacityLiters   float64
	RecommendedStructure            string
}

// ARAnalysis is the artificial-recharge part of the analysis.
type ARAnalysis struct {
	Feasible                bool
	RecommendedStructure    string
	RechargePotentialLiters float64
	StructureDimensions     string
}

// CostBenefitAnalysis holds the money side of the analysis.
type CostBenefitAnalysis struct {
	EstimatedCostInr   float64
	AnnualSavingsInr   float64
	PaybackPeriodYears float64
	SubsidyAvailable   bool
}

// Scores are the fields of a Report or Property that only an assessment may set.
type Scores struct {
	FeasibilityScore                float64
	AnnualHarvestingPotentialLiters float64
	RecommendedSolution             string
	EstimatedCostInr                float64
}

// Scores extracts the scored fields from the analysis.
func (r *AssessmentResponse) Scores() Scores {
	solution := r.RWHAnalysis.RecommendedStructure
	if solution == "" {
		solution = r.ARAnalysis.RecommendedStructure
	}

	return Scores{
		FeasibilityScore:                r.FeasibilityScore,
		AnnualHarvestingPotentialLiters: r.RWHAnalysis.AnnualHarvestingPotentialLiters,
		RecommendedSolution:             solution,
		EstimatedCostInr:                r.CostBenefitAnalysis.EstimatedCostInr,
	}
}
