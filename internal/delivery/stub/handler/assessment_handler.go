// Package handler serves the development stand-ins for the remote collaborators.
package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strings"

	deliverycontext "jalsetu/internal/delivery/context"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/infra/assessment"

	"github.com/labstack/echo/v4"
)

const (
	// litresPerPersonPerDay is the urban domestic demand norm.
	litresPerPersonPerDay = 135
	defaultRunoff         = 0.8
	tankCostInrPerLitre   = 8
	baseInstallCostInr    = 15000
	waterTariffInrPerKL   = 50
	minRechargeOpenSpace  = 10
	rechargeInfiltration  = 0.3
)

// runoffCoefficients by roof material.
var runoffCoefficients = map[string]float64{
	"concrete": 0.85,
	"metal":    0.9,
	"tin":      0.9,
	"tile":     0.75,
	"asbestos": 0.8,
	"thatch":   0.6,
}

// AssessRequest is the POST /assess body as the stub validates it.
type AssessRequest struct {
	Name         string  `json:"name" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	NumDwellers  int     `json:"num_dwellers" validate:"gt=0"`
	RoofAreaSqm  float64 `json:"roof_area_sqm" validate:"gte=0"`
	OpenSpaceSqm float64 `json:"open_space_sqm" validate:"gte=0"`
	RoofType     string  `json:"roof_type"`
}

// AssessmentHandler fakes the feasibility-scoring backend with a
// deterministic rule-of-thumb model.
type AssessmentHandler struct {
	logger *slog.Logger
}

// NewAssessmentHandler is the constructor for AssessmentHandler
func NewAssessmentHandler(logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		logger: logger,
	}
}

// Assess handles POST /assess
func (h *AssessmentHandler) Assess(c echo.Context) error {
	var req AssessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewInvalidInputError(err.Error())
	}

	resp := Score(&req)

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Scored site",
		slog.String("name", req.Name),
		slog.Float64("feasibilityScore", resp.FeasibilityScore),
	)

	return c.JSON(http.StatusOK, resp)
}

// Score computes the stub analysis for a request.
func Score(req *AssessRequest) *assessment.AssessResponse {
	rainfall := annualRainfallMm(req.Latitude)
	runoff, ok := runoffCoefficients[strings.ToLower(strings.TrimSpace(req.RoofType))]
	if !ok {
		runoff = defaultRunoff
	}

	// One square metre under one millimetre of rain yields one litre.
	potential := req.RoofAreaSqm * rainfall * runoff
	demand := float64(req.NumDwellers * litresPerPersonPerDay * 365)
	demandMet := math.Min(100, potential/demand*100)

	openSpaceFactor := math.Min(req.OpenSpaceSqm, 100)
	score := round1(math.Min(100, demandMet*0.7+openSpaceFactor*0.3))

	tank := round1(potential * 0.1)
	cost := round1(baseInstallCostInr + tank*tankCostInrPerLitre)
	savings := round1(potential / 1000 * waterTariffInrPerKL)
	payback := 0.0
	if savings > 0 {
		payback = round1(cost / savings)
	}

	structure := "Recharge pit"
	if potential >= demand/2 {
		structure = "Storage tank"
	}

	ar := assessment.ARAnalysis{
		Feasible:             req.OpenSpaceSqm >= minRechargeOpenSpace,
		RecommendedStructure: "Recharge trench",
	}
	if ar.Feasible {
		ar.RecommendedStructure = "Recharge pit"
		ar.RechargePotentialLiters = round1(req.OpenSpaceSqm * rainfall * rechargeInfiltration)
		ar.StructureDimensions = "2m x 2m x 3m"
	}

	insights := []string{rainfallInsight(rainfall)}
	if demandMet >= 50 {
		insights = append(insights, "Roof harvest covers at least half of household demand")
	}
	if !ar.Feasible {
		insights = append(insights, "Open space is too small for a recharge structure")
	}

	return &assessment.AssessResponse{
		LocationInfo: assessment.LocationInfo{
			AnnualRainfallMm:  rainfall,
			RainfallIntensity: rainfallIntensity(rainfall),
		},
		FeasibilityScore:    score,
		FeasibilityInsights: insights,
		RWHAnalysis: assessment.RWHAnalysis{
			RunoffCoefficient:               runoff,
			AnnualHarvestingPotentialLiters: round1(potential),
			AnnualWaterDemandLiters:         demand,
			DemandMetPercentage:             round1(demandMet),
			RecommendedTankCapacityLiters:   tank,
			RecommendedStructure:            structure,
		},
		ARAnalysis: ar,
		CostBenefitAnalysis: assessment.CostBenefitAnalysis{
			EstimatedCostInr:   cost,
			AnnualSavingsInr:   savings,
			PaybackPeriodYears: payback,
			SubsidyAvailable:   req.RoofAreaSqm >= 100,
		},
	}
}

// annualRainfallMm uses coarse latitude bands across the subcontinent.
func annualRainfallMm(latitude float64) float64 {
	switch lat := math.Abs(latitude); {
	case lat < 15:
		return 1400
	case lat < 23:
		return 1000
	case lat < 28:
		return 800
	default:
		return 650
	}
}

func rainfallIntensity(mm float64) string {
	switch {
	case mm >= 1200:
		return "high"
	case mm >= 800:
		return "moderate"
	default:
		return "low"
	}
}

func rainfallInsight(mm float64) string {
	if mm >= 1000 {
		return "High annual rainfall"
	}

	return "Moderate to low annual rainfall"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
