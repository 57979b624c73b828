package entity

import (
	"time"
)

// Report is the persisted outcome of one successful assessment.
// Identity is ID; reports are immutable apart from explicit update/delete.
type Report struct {
	ID        string    // Client-generated before any remote write.
	Name      string    // Label the user gave the site.
	Location  string    // Display address, may be empty.
	Latitude  float64   // The geographic latitude.
	Longitude float64   // The geographic longitude.
	Dwellers  int       // Household size used for the demand estimate.
	RoofArea  float64   // Square metres.
	OpenSpace float64   // Square metres.
	RoofType  string    // e.g. "concrete", "tin".
	Timestamp time.Time // Creation instant, millisecond precision.
	Scores

	AssessmentResponse *AssessmentResponse // Full analysis, nil for legacy documents.
}

// NewReport builds a Report from a successful assessment.
func NewReport(id string, req *AssessmentRequest, address string, resp *AssessmentResponse, at time.Time) *Report {
	return &Report{
		ID:                 id,
		Name:               req.Name,
		Location:           address,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Dwellers:           req.NumDwellers,
		RoofArea:           req.RoofAreaSqm,
		OpenSpace:          req.OpenSpaceSqm,
		RoofType:           req.RoofType,
		Timestamp:          at.Truncate(time.Millisecond),
		Scores:             resp.Scores(),
		AssessmentResponse: resp,
	}
}
