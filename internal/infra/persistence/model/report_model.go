// Package model holds the document shapes stored in the remote store.
// Field names are camelCase and instants are Unix epoch milliseconds.
package model

// ReportDoc is the document at users/{uid}/reports/{id}.
type ReportDoc struct {
	ID                              string                 `json:"id"`
	Name                            string                 `json:"name"`
	Location                        string                 `json:"location"`
	Latitude                        float64                `json:"latitude"`
	Longitude                       float64                `json:"longitude"`
	Dwellers                        int                    `json:"dwellers"`
	RoofArea                        float64                `json:"roofArea"`
	OpenSpace                       float64                `json:"openSpace"`
	RoofType                        string                 `json:"roofType"`
	Timestamp                       int64                  `json:"timestamp"`
	FeasibilityScore                float64                `json:"feasibilityScore"`
	AnnualHarvestingPotentialLiters float64                `json:"annualHarvestingPotentialLiters"`
	RecommendedSolution             string                 `json:"recommendedSolution"`
	EstimatedCostInr                float64                `json:"estimatedCostInr"`
	AssessmentResponse              *AssessmentResponseDoc `json:"assessmentResponse,omitempty"`
}

// AssessmentResponseDoc is the analysis embedded in a report.
type AssessmentResponseDoc struct {
	LocationInfo        LocationInfoDoc        `json:"locationInfo"`
	FeasibilityScore    float64                `json:"feasibilityScore"`
	FeasibilityInsights []string               `json:"feasibilityInsights,omitempty"`
	RWHAnalysis         RWHAnalysisDoc         `json:"rwhAnalysis"`
	ARAnalysis          ARAnalysisDoc          `json:"arAnalysis"`
	CostBenefitAnalysis CostBenefitAnalysisDoc `json:"costBenefitAnalysis"`
}

type LocationInfoDoc struct {
	City               string  `json:"city"`
	District           string  `json:"district"`
	State              string  `json:"state"`
	AnnualRainfallMm   float64 `json:"annualRainfallMm"`
	GroundwaterDepthM  float64 `json:"groundwaterDepthM"`
	SoilType           string  `json:"soilType"`
	AquiferType        string  `json:"aquiferType"`
	RainfallIntensity  string  `json:"rainfallIntensity"`
	PrincipalAquifer   string  `json:"principalAquifer"`
	GroundwaterQuality string  `json:"groundwaterQuality"`
}

type RWHAnalysisDoc struct {
	RunoffCoefficient               float64 `json:"runoffCoefficient"`
	AnnualHarvestingPotentialLiters float64 `json:"annualHarvestingPotentialLiters"`
	AnnualWaterDemandLiters         float64 `json:"annualWaterDemandLiters"`
	DemandMetPercentage             float64 `json:"demandMetPercentage"`
	RecommendedTankCapacityLiters   float64 `json:"recommendedTankCapacityLiters"`
	RecommendedStructure            string  `json:"recommendedStructure"`
}

type ARAnalysisDoc struct {
	Feasible                bool    `json:"feasible"`
	RecommendedStructure    string  `json:"recommendedStructure"`
	RechargePotentialLiters float64 `json:"rechargePotentialLiters"`
	StructureDimensions     string  `json:"structureDimensions"`
}

type CostBenefitAnalysisDoc struct {
	EstimatedCostInr   float64 `json:"estimatedCostInr"`
	AnnualSavingsInr   float64 `json:"annualSavingsInr"`
	PaybackPeriodYears float64 `json:"paybackPeriodYears"`
	SubsidyAvailable   bool    `json:"subsidyAvailable"`
}
