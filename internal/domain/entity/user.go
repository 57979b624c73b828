// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the authenticated principal as verified by the identity provider.
type Identity struct {
	UID         string // Stable user identifier issued by the auth backend.
	DisplayName string
	PhotoURL    string
	Email       string
}

// UserProfile is the identity-scoped record for the main surface.
// The user's reports and properties live under the same remote node but are
// owned by their own stores and never travel with the profile.
type UserProfile struct {
	UID                 string
	DisplayName         string
	PhotoURL            string
	OnboardingCompleted bool    // Gate for the main dashboard. Set once, never reset.
	NumDwellers         int     // Household size collected during onboarding.
	RoofAreaSqm         float64 // Default roof area for new assessments.
	OpenSpaceSqm        float64 // Default open space for new assessments.
	RoofType            string
}

// NewUserProfile builds the profile created on first sign-in.
func NewUserProfile(identity *Identity) *UserProfile {
	return &UserProfile{
		UID:         identity.UID,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
	}
}

// GraminProfile is the farm profile for the gramin surface. Its onboarding flag
// is independent of UserProfile's.
type GraminProfile struct {
	UID                 string
	Village             string
	FarmAreaAcres       float64
	SoilType            string
	IrrigationSource    string
	CurrentSeason       string
	PrimaryCrop         string
	Language            string
	OnboardingCompleted bool
}
