package model

// PropertyDoc is the document at users/{uid}/properties/{id}.
type PropertyDoc struct {
	ID                              string  `json:"id"`
	Name                            string  `json:"name"`
	Address                         string  `json:"address"`
	Latitude                        float64 `json:"latitude"`
	Longitude                       float64 `json:"longitude"`
	FeasibilityScore                float64 `json:"feasibilityScore"`
	AnnualHarvestingPotentialLiters float64 `json:"annualHarvestingPotentialLiters"`
	RecommendedSolution             string  `json:"recommendedSolution"`
	EstimatedCostInr                float64 `json:"estimatedCostInr"`
	LastAssessmentDate              int64   `json:"lastAssessmentDate"`
	PropertyType                    string  `json:"propertyType"`
	RoofArea                        float64 `json:"roofArea"`
	OpenSpace                       float64 `json:"openSpace"`
	Dwellers                        int     `json:"dwellers"`
}
