package entity

import (
	"time"
)

// DefaultPropertyType is used when a property is created without an explicit type.
const DefaultPropertyType = "Residential"

// Property is a longer-lived tracked asset. Its scored fields are only ever
// written from an assessment: on creation, on promotion of a Report, or on
// re-assessment.
type Property struct {
	ID                 string
	Name               string
	Address            string
	Latitude           float64
	Longitude          float64
	LastAssessmentDate time.Time
	PropertyType       string
	RoofArea           float64
	OpenSpace          float64
	Dwellers           int
	Scores
}

// PropertyFromReport maps a Report onto a new Property. Scored fields are copied as-is.
func PropertyFromReport(id string, report *Report, propertyType string) *Property {
	if propertyType == "" {
		propertyType = DefaultPropertyType
	}

	return &Property{
		ID:                 id,
		Name:               report.Name,
		Address:            report.Location,
		Latitude:           report.Latitude,
		Longitude:          report.Longitude,
		LastAssessmentDate: report.Timestamp,
		PropertyType:       propertyType,
		RoofArea:           report.RoofArea,
		OpenSpace:          report.OpenSpace,
		Dwellers:           report.Dwellers,
		Scores:             report.Scores,
	}
}

// AssessmentRequest builds the request used to re-assess the property.
func (p *Property) AssessmentRequest(roofType string) *AssessmentRequest {
	return &AssessmentRequest{
		Name:         p.Name,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		NumDwellers:  p.Dwellers,
		RoofAreaSqm:  p.RoofArea,
		OpenSpaceSqm: p.OpenSpace,
		RoofType:     roofType,
	}
}

// ApplyAssessment refreshes the scored fields in place. The ID is untouched.
func (p *Property) ApplyAssessment(resp *AssessmentResponse, at time.Time) {
	p.Scores = resp.Scores()
	p.LastAssessmentDate = at.Truncate(time.Millisecond)
}
