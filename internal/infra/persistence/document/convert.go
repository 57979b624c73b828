package document

import (
	"time"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/infra/persistence/model"
)

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}

func boolPtr(b bool) *bool {
	return &b
}

func fromReportDomain(report *entity.Report) *model.ReportDoc {
	return &model.ReportDoc{
		ID:                              report.ID,
		Name:                            report.Name,
		Location:                        report.Location,
		Latitude:                        report.Latitude,
		Longitude:                       report.Longitude,
		Dwellers:                        report.Dwellers,
		RoofArea:                        report.RoofArea,
		OpenSpace:                       report.OpenSpace,
		RoofType:                        report.RoofType,
		Timestamp:                       toMillis(report.Timestamp),
		FeasibilityScore:                report.FeasibilityScore,
		AnnualHarvestingPotentialLiters: report.AnnualHarvestingPotentialLiters,
		RecommendedSolution:             report.RecommendedSolution,
		EstimatedCostInr:                report.EstimatedCostInr,
		AssessmentResponse:              fromResponseDomain(report.AssessmentResponse),
	}
}

func toReportDomain(doc *model.ReportDoc) *entity.Report {
	return &entity.Report{
		ID:        doc.ID,
		Name:      doc.Name,
		Location:  doc.Location,
		Latitude:  doc.Latitude,
		Longitude: doc.Longitude,
		Dwellers:  doc.Dwellers,
		RoofArea:  doc.RoofArea,
		OpenSpace: doc.OpenSpace,
		RoofType:  doc.RoofType,
		Timestamp: fromMillis(doc.Timestamp),
		Scores: entity.Scores{
			FeasibilityScore:                doc.FeasibilityScore,
			AnnualHarvestingPotentialLiters: doc.AnnualHarvestingPotentialLiters,
			RecommendedSolution:             doc.RecommendedSolution,
			EstimatedCostInr:                doc.EstimatedCostInr,
		},
		AssessmentResponse: toResponseDomain(doc.AssessmentResponse),
	}
}

func fromResponseDomain(resp *entity.AssessmentResponse) *model.AssessmentResponseDoc {
	if resp == nil {
		return nil
	}

	return &model.AssessmentResponseDoc{
		LocationInfo:        model.LocationInfoDoc(resp.LocationInfo),
		FeasibilityScore:    resp.FeasibilityScore,
		FeasibilityInsights: resp.FeasibilityInsights,
		RWHAnalysis:         model.RWHAnalysisDoc(resp.RWHAnalysis),
		ARAnalysis:          model.ARAnalysisDoc(resp.ARAnalysis),
		CostBenefitAnalysis: model.CostBenefitAnalysisDoc(resp.CostBenefitAnalysis),
	}
}

func toResponseDomain(doc *model.AssessmentResponseDoc) *entity.AssessmentResponse {
	if doc == nil {
		return nil
	}

	return &entity.AssessmentResponse{
		LocationInfo:        entity.LocationInfo(doc.LocationInfo),
		FeasibilityScore:    doc.FeasibilityScore,
		FeasibilityInsights: doc.FeasibilityInsights,
		RWHAnalysis:         entity.RWHAnalysis(doc.RWHAnalysis),
		ARAnalysis:          entity.ARAnalysis(doc.ARAnalysis),
		CostBenefitAnalysis: entity.CostBenefitAnalysis(doc.CostBenefitAnalysis),
	}
}

func fromPropertyDomain(property *entity.Property) *model.PropertyDoc {
	return &model.PropertyDoc{
		ID:                              property.ID,
		Name:                            property.Name,
		Address:                         property.Address,
		Latitude:                        property.Latitude,
		Longitude:                       property.Longitude,
		FeasibilityScore:                property.FeasibilityScore,
		AnnualHarvestingPotentialLiters: property.AnnualHarvestingPotentialLiters,
		RecommendedSolution:             property.RecommendedSolution,
		EstimatedCostInr:                property.EstimatedCostInr,
		LastAssessmentDate:              toMillis(property.LastAssessmentDate),
		PropertyType:                    property.PropertyType,
		RoofArea:                        property.RoofArea,
		OpenSpace:                       property.OpenSpace,
		Dwellers:                        property.Dwellers,
	}
}

func toPropertyDomain(doc *model.PropertyDoc) *entity.Property {
	return &entity.Property{
		ID:                 doc.ID,
		Name:               doc.Name,
		Address:            doc.Address,
		Latitude:           doc.Latitude,
		Longitude:          doc.Longitude,
		LastAssessmentDate: fromMillis(doc.LastAssessmentDate),
		PropertyType:       doc.PropertyType,
		RoofArea:           doc.RoofArea,
		OpenSpace:          doc.OpenSpace,
		Dwellers:           doc.Dwellers,
		Scores: entity.Scores{
			FeasibilityScore:                doc.FeasibilityScore,
			AnnualHarvestingPotentialLiters: doc.AnnualHarvestingPotentialLiters,
			RecommendedSolution:             doc.RecommendedSolution,
			EstimatedCostInr:                doc.EstimatedCostInr,
		},
	}
}

func fromUserProfileDomain(profile *entity.UserProfile) *model.UserProfileDoc {
	return &model.UserProfileDoc{
		UID:                 profile.UID,
		DisplayName:         profile.DisplayName,
		PhotoURL:            profile.PhotoURL,
		OnboardingCompleted: boolPtr(profile.OnboardingCompleted),
		NumDwellers:         profile.NumDwellers,
		RoofAreaSqm:         profile.RoofAreaSqm,
		OpenSpaceSqm:        profile.OpenSpaceSqm,
		RoofType:            profile.RoofType,
	}
}

func toUserProfileDomain(doc *model.UserProfileDoc) *entity.UserProfile {
	return &entity.UserProfile{
		UID:                 doc.UID,
		DisplayName:         doc.DisplayName,
		PhotoURL:            doc.PhotoURL,
		OnboardingCompleted: doc.OnboardingCompleted != nil && *doc.OnboardingCompleted,
		NumDwellers:         doc.NumDwellers,
		RoofAreaSqm:         doc.RoofAreaSqm,
		OpenSpaceSqm:        doc.OpenSpaceSqm,
		RoofType:            doc.RoofType,
	}
}

func fromGraminProfileDomain(profile *entity.GraminProfile) *model.GraminProfileDoc {
	return &model.GraminProfileDoc{
		UID:                 profile.UID,
		Village:             profile.Village,
		FarmAreaAcres:       profile.FarmAreaAcres,
		SoilType:            profile.SoilType,
		IrrigationSource:    profile.IrrigationSource,
		CurrentSeason:       profile.CurrentSeason,
		PrimaryCrop:         profile.PrimaryCrop,
		Language:            profile.Language,
		OnboardingCompleted: boolPtr(profile.OnboardingCompleted),
	}
}

func toGraminProfileDomain(doc *model.GraminProfileDoc) *entity.GraminProfile {
	return &entity.GraminProfile{
		UID:                 doc.UID,
		Village:             doc.Village,
		FarmAreaAcres:       doc.FarmAreaAcres,
		SoilType:            doc.SoilType,
		IrrigationSource:    doc.IrrigationSource,
		CurrentSeason:       doc.CurrentSeason,
		PrimaryCrop:         doc.PrimaryCrop,
		Language:            doc.Language,
		OnboardingCompleted: doc.OnboardingCompleted != nil && *doc.OnboardingCompleted,
	}
}
