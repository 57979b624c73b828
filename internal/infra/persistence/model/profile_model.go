package model

// UserProfileDoc holds the profile fields of users/{uid}. The reports and
// properties children of that node are not part of it.
type UserProfileDoc struct {
	UID                 string  `json:"uid"`
	DisplayName         string  `json:"displayName"`
	PhotoURL            string  `json:"photoUrl"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"` // nil on documents written before onboarding existed
	NumDwellers         int     `json:"numDwellers"`
	RoofAreaSqm         float64 `json:"roofAreaSqm"`
	OpenSpaceSqm        float64 `json:"openSpaceSqm"`
	RoofType            string  `json:"roofType"`
}

// Fields lists the profile fields for a partial update of users/{uid}.
func (d *UserProfileDoc) Fields() map[string]any {
	completed := d.OnboardingCompleted != nil && *d.OnboardingCompleted

	return map[string]any{
		"uid":                 d.UID,
		"displayName":         d.DisplayName,
		"photoUrl":            d.PhotoURL,
		"onboardingCompleted": completed,
		"numDwellers":         d.NumDwellers,
		"roofAreaSqm":         d.RoofAreaSqm,
		"openSpaceSqm":        d.OpenSpaceSqm,
		"roofType":            d.RoofType,
	}
}

// GraminProfileDoc is the document at users/{uid}/graminProfile.
type GraminProfileDoc struct {
	UID                 string  `json:"uid"`
	Village             string  `json:"village"`
	FarmAreaAcres       float64 `json:"farmAreaAcres"`
	SoilType            string  `json:"soilType"`
	IrrigationSource    string  `json:"irrigationSource"`
	CurrentSeason       string  `json:"currentSeason"`
	PrimaryCrop         string  `json:"primaryCrop"`
	Language            string  `json:"language"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"`
}
