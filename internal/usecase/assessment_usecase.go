package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// FormInput is the raw assessment form as typed by the user.
type FormInput struct {
	Name      string
	Dwellers  string
	RoofArea  string
	OpenSpace string
	RoofType  string

	// Location is used as-is when set; otherwise the device location is acquired.
	Location *entity.Location

	// AllowMissingLocation sends the request without coordinates when
	// acquisition fails instead of failing with LocationUnavailable.
	AllowMissingLocation bool
}

// PropertyInput creates a property directly from a fresh assessment.
type PropertyInput struct {
	FormInput
	PropertyType string
}

// PromoteOptions parameterizes Report to Property promotion.
type PromoteOptions struct {
	PropertyType string // Defaults to entity.DefaultPropertyType.
}

// AssessmentUsecase turns user input into scored reports and properties.
type AssessmentUsecase interface {
	// RunAssessment validates, locates, assesses and builds a Report. Nothing is persisted.
	RunAssessment(ctx context.Context, input *FormInput) (*entity.Report, error)

	// Promote maps a Report onto a new Property. Pure, no I/O.
	Promote(report *entity.Report, opts PromoteOptions) (*entity.Property, error)

	// Reassess re-runs the assessment for a property and refreshes its scored fields in place.
	Reassess(ctx context.Context, property *entity.Property) (*entity.Property, error)

	// AssessProperty creates a Property directly from a fresh assessment. Nothing is persisted.
	AssessProperty(ctx context.Context, input *PropertyInput) (*entity.Property, error)

	// SaveAssessment persists the report and, when promote is set, the promoted
	// property. The property is written only after the report write succeeded.
	SaveAssessment(ctx context.Context, uid string, report *entity.Report, promote *PromoteOptions) (*entity.Property, error)
}
