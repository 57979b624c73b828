package assessment

import (
	"jalsetu/internal/domain/entity"
)

// AssessRequest is the POST /assess body.
type AssessRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	NumDwellers  int     `json:"num_dwellers"`
	RoofAreaSqm  float64 `json:"roof_area_sqm"`
	OpenSpaceSqm float64 `json:"open_space_sqm"`
	RoofType     string  `json:"roof_type"`
}

// AssessResponse is the POST /assess success body. Absent fields decode as zero.
type AssessResponse struct {
	LocationInfo        LocationInfo        `json:"location_info"`
	FeasibilityScore    float64             `json:"feasibility_score"`
	FeasibilityInsights []string            `json:"feasibility_insights"`
	RWHAnalysis         RWHAnalysis         `json:"rwh_analysis"`
	ARAnalysis          ARAnalysis          `json:"ar_analysis"`
	CostBenefitAnalysis CostBenefitAnalysis `json:"cost_benefit_analysis"`
}

type LocationInfo struct {
	City               string  `json:"city"`
	District           string  `json:"district"`
	State              string  `json:"state"`
	AnnualRainfallMm   float64 `json:"annual_rainfall_mm"`
	GroundwaterDepthM  float64 `json:"groundwater_depth_m"`
	SoilType           string  `json:"soil_type"`
	AquiferType        string  `json:"aquifer_type"`
	RainfallIntensity  string  `json:"rainfall_intensity"`
	PrincipalAquifer   string  `json:"principal_aquifer"`
	GroundwaterQuality string  `json:"groundwater_quality"`
}

type RWHAnalysis struct {
	RunoffCoefficient               float64 `json:"runoff_coefficient"`
	AnnualHarvestingPotentialLiters float64 `json:"annual_harvesting_potential_liters"`
	AnnualWaterDemandLiters         float64 `json:"annual_water_demand_liters"`
	DemandMetPercentage             float64 `json:"demand_met_percentage"`
	RecommendedTankCapacityLiters   float64 `json:"recommended_tank_capacity_liters"`
	RecommendedStructure            string  `json:"recommended_structure"`
}

type ARAnalysis struct {
	Feasible                bool    `json:"feasible"`
	RecommendedStructure    string  `json:"recommended_structure"`
	RechargePotentialLiters float64 `json:"recharge_potential_liters"`
	StructureDimensions     string  `json:"structure_dimensions"`
}

type CostBenefitAnalysis struct {
	EstimatedCostInr   float64 `json:"estimated_cost_inr"`
	AnnualSavingsInr   float64 `json:"annual_savings_inr"`
	PaybackPeriodYears float64 `json:"payback_period_years"`
	SubsidyAvailable   bool    `json:"subsidy_available"`
}

// RequestFromEntity maps the domain request onto the wire.
func RequestFromEntity(req *entity.AssessmentRequest) *AssessRequest {
	return &AssessRequest{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		NumDwellers:  req.NumDwellers,
		RoofAreaSqm:  req.RoofAreaSqm,
		OpenSpaceSqm: req.OpenSpaceSqm,
		RoofType:     req.RoofType,
	}
}

// ToEntity maps the wire response onto the domain.
func (r *AssessResponse) ToEntity() *entity.AssessmentResponse {
	return &entity.AssessmentResponse{
		LocationInfo: entity.LocationInfo{
			City:               r.LocationInfo.City,
			District:           r.LocationInfo.District,
			State:              r.LocationInfo.State,
			AnnualRainfallMm:   r.LocationInfo.AnnualRainfallMm,
			GroundwaterDepthM:  r.LocationInfo.GroundwaterDepthM,
			SoilType:           r.LocationInfo.SoilType,
			AquiferType:        r.LocationInfo.AquiferType,
			RainfallIntensity:  r.LocationInfo.RainfallIntensity,
			PrincipalAquifer:   r.LocationInfo.PrincipalAquifer,
			GroundwaterQuality: r.LocationInfo.GroundwaterQuality,
		},
		FeasibilityScore:    r.FeasibilityScore,
		FeasibilityInsights: r.FeasibilityInsights,
		RWHAnalysis: entity.RWHAnalysis{
			RunoffCoefficient:               r.RWHAnalysis.RunoffCoefficient,
			AnnualHarvestingPotentialLiters: r.RWHAnalysis.AnnualHarvestingPotentialLiters,
			AnnualWaterDemandLiters:         r.RWHAnalysis.AnnualWaterDemandLiters,
			DemandMetPercentage:             r.RWHAnalysis.DemandMetPercentage,
			RecommendedTankCapacityLiters:   r.RWHAnalysis.RecommendedTankCapacityLiters,
			RecommendedStructure:            r.RWHAnalysis.RecommendedStructure,
		},
		ARAnalysis: entity.ARAnalysis{
			Feasible:                r.ARAnalysis.Feasible,
			RecommendedStructure:    r.ARAnalysis.RecommendedStructure,
			RechargePotentialLiters: r.ARAnalysis.RechargePotentialLiters,
			StructureDimensions:     r.ARAnalysis.StructureDimensions,
		},
		CostBenefitAnalysis: entity.CostBenefitAnalysis{
			EstimatedCostInr:   r.CostBenefitAnalysis.EstimatedCostInr,
			AnnualSavingsInr:   r.CostBenefitAnalysis.AnnualSavingsInr,
			PaybackPeriodYears: r.CostBenefitAnalysis.PaybackPeriodYears,
			SubsidyAvailable:   r.CostBenefitAnalysis.SubsidyAvailable,
		},
	}
}
