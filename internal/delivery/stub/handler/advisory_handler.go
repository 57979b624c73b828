package handler

import (
	"net/http"
	"sort"
	"strings"

	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	defaultVendorRadiusKm = 25
	defaultMarketLimit    = 10
)

// CropRequest is the GET /crop-suggestion query.
type CropRequest struct {
	SoilType         string  `query:"soil_type" validate:"required"`
	Season           string  `query:"season" validate:"required"`
	IrrigationSource string  `query:"irrigation_source"`
	FarmAreaAcres    float64 `query:"farm_area_acres" validate:"gte=0"`
	Language         string  `query:"lang"`
}

// MarketRequest is the GET /market-prices query.
type MarketRequest struct {
	Commodity string `query:"commodity" validate:"required"`
	State     string `query:"state"`
	District  string `query:"district"`
	Limit     int    `query:"limit" validate:"gte=0,lte=100"`
}

// VendorRequest is the GET /vendors query.
type VendorRequest struct {
	Query     string  `query:"q" validate:"required"`
	Latitude  float64 `query:"lat" validate:"latitude"`
	Longitude float64 `query:"lon" validate:"longitude"`
	RadiusKm  float64 `query:"radius_km" validate:"gte=0,lte=200"`
}

// WaterRequest is the GET /water-management query.
type WaterRequest struct {
	Crop             string  `query:"crop" validate:"required"`
	FarmAreaAcres    float64 `query:"area_acres" validate:"gt=0"`
	IrrigationSource string  `query:"irrigation_source"`
	SoilType         string  `query:"soil_type"`
}

type cropEntry struct {
	crop, variety, water string
	yieldKgHa            float64
	soils                []string
}

var cropsBySeason = map[string][]cropEntry{
	"kharif": {
		{crop: "Paddy", variety: "Pusa Basmati 1121", water: "high", yieldKgHa: 4500, soils: []string{"clay", "loamy"}},
		{crop: "Maize", variety: "HQPM 1", water: "medium", yieldKgHa: 5000, soils: []string{"loamy", "sandy loam"}},
		{crop: "Pigeon pea", variety: "ICPL 87", water: "low", yieldKgHa: 1500, soils: []string{"black", "red"}},
	},
	"rabi": {
		{crop: "Wheat", variety: "HD 2967", water: "medium", yieldKgHa: 5000, soils: []string{"loamy", "clay"}},
		{crop: "Mustard", variety: "Pusa Bold", water: "low", yieldKgHa: 1800, soils: []string{"sandy loam", "loamy"}},
		{crop: "Chickpea", variety: "JG 11", water: "low", yieldKgHa: 2000, soils: []string{"black", "loamy"}},
	},
	"zaid": {
		{crop: "Moong", variety: "SML 668", water: "low", yieldKgHa: 1000, soils: []string{"sandy loam", "loamy"}},
		{crop: "Watermelon", variety: "Sugar Baby", water: "medium", yieldKgHa: 30000, soils: []string{"sandy", "sandy loam"}},
	},
}

// modal prices in INR per quintal.
var basePrices = map[string]float64{
	"onion":  1800,
	"tomato": 1500,
	"wheat":  2275,
	"paddy":  2183,
	"potato": 1200,
}

var markets = []string{"Azadpur", "Lasalgaon", "Vashi", "Bowenpally", "Koyambedu"}

// litres per acre per day.
var cropWaterNeed = map[string]float64{
	"paddy":     45000,
	"wheat":     18000,
	"maize":     20000,
	"sugarcane": 40000,
	"mustard":   10000,
}

type vendorEntry struct {
	id, name, phone string
	offset          orb.Point
	rating          float64
	services        []string
}

// vendors are placed at fixed offsets from the searched point.
var vendorCatalogue = []vendorEntry{
	{id: "v-001", name: "Kisan Drip Systems", phone: "+91-98100-00001", offset: orb.Point{0.02, 0.01}, rating: 4.5,
		services: []string{"drip irrigation", "sprinkler"}},
	{id: "v-002", name: "JalSanchay Builders", phone: "+91-98100-00002", offset: orb.Point{-0.05, 0.03}, rating: 4.2,
		services: []string{"rainwater harvesting", "recharge pit", "storage tank"}},
	{id: "v-003", name: "Surya Pumps", phone: "+91-98100-00003", offset: orb.Point{0.1, -0.08}, rating: 3.9,
		services: []string{"solar pump", "borewell"}},
	{id: "v-004", name: "Gramin Borewells", phone: "+91-98100-00004", offset: orb.Point{0.3, 0.25}, rating: 4.0,
		services: []string{"borewell", "recharge pit"}},
}

// AdvisoryHandler fakes the farming advisory endpoints with fixed catalogues.
type AdvisoryHandler struct{}

// NewAdvisoryHandler is the constructor for AdvisoryHandler
func NewAdvisoryHandler() *AdvisoryHandler {
	return &AdvisoryHandler{}
}

// CropSuggestion handles GET /crop-suggestion
func (h *AdvisoryHandler) CropSuggestion(c echo.Context) error {
	var req CropRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	entries, ok := cropsBySeason[strings.ToLower(req.Season)]
	if !ok {
		return domainerrors.NewInvalidInputError("unknown season " + req.Season)
	}

	soil := strings.ToLower(req.SoilType)
	suggestions := make([]service.CropSuggestion, 0, len(entries))
	for _, e := range entries {
		score := 0.6
		for _, s := range e.soils {
			if s == soil {
				score = 0.9
			}
		}
		var notes []string
		if e.water == "high" && req.IrrigationSource == "" {
			notes = append(notes, "Needs assured irrigation")
		}
		suggestions = append(suggestions, service.CropSuggestion{
			Crop:              e.crop,
			Variety:           e.variety,
			SuitabilityScore:  score,
			WaterRequirement:  e.water,
			ExpectedYieldKgHa: e.yieldKgHa,
			Notes:             notes,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].SuitabilityScore > suggestions[j].SuitabilityScore
	})

	return c.JSON(http.StatusOK, suggestions)
}

// MarketPrices handles GET /market-prices
func (h *AdvisoryHandler) MarketPrices(c echo.Context) error {
	var req MarketRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	base, ok := basePrices[strings.ToLower(req.Commodity)]
	if !ok {
		base = 2000
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultMarketLimit
	}

	prices := make([]service.MarketPrice, 0, len(markets))
	for i, market := range markets {
		if len(prices) == limit {
			break
		}
		modal := base + float64(i*50)
		prices = append(prices, service.MarketPrice{
			Market:      market,
			Commodity:   req.Commodity,
			Variety:     "Other",
			MinPriceInr: modal - 200,
			MaxPriceInr: modal + 200,
			ModalPrice:  modal,
			ArrivalDate: "2026-01-15",
		})
	}

	return c.JSON(http.StatusOK, prices)
}

// Vendors handles GET /vendors
func (h *AdvisoryHandler) Vendors(c echo.Context) error {
	var req VendorRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = defaultVendorRadiusKm
	}
	origin := orb.Point{req.Longitude, req.Latitude}
	needle := strings.ToLower(req.Query)

	vendors := make([]service.Vendor, 0, len(vendorCatalogue))
	for _, v := range vendorCatalogue {
		if !matchesVendor(v, needle) {
			continue
		}
		at := orb.Point{origin[0] + v.offset[0], origin[1] + v.offset[1]}
		distanceKm := geo.Distance(origin, at) / 1000
		if distanceKm > radius {
			continue
		}
		vendors = append(vendors, service.Vendor{
			ID:         v.id,
			Name:       v.name,
			Phone:      v.phone,
			DistanceKm: round1(distanceKm),
			Rating:     v.rating,
			Services:   v.services,
		})
	}
	sort.Slice(vendors, func(i, j int) bool {
		return vendors[i].DistanceKm < vendors[j].DistanceKm
	})

	return c.JSON(http.StatusOK, vendors)
}

// WaterManagement handles GET /water-management
func (h *AdvisoryHandler) WaterManagement(c echo.Context) error {
	var req WaterRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	perAcre, ok := cropWaterNeed[strings.ToLower(req.Crop)]
	if !ok {
		perAcre = 15000
	}

	plan := service.WaterPlan{
		Crop:                  req.Crop,
		DailyRequirementLiter: round1(perAcre * req.FarmAreaAcres),
		IrrigationMethod:      "furrow",
		ScheduleDays:          7,
		Tips:                  []string{"Irrigate early morning to reduce evaporation"},
	}
	if req.IrrigationSource == "borewell" || strings.Contains(strings.ToLower(req.SoilType), "sand") {
		plan.IrrigationMethod = "drip"
		plan.ScheduleDays = 3
		plan.Tips = append(plan.Tips, "Drip saves 30-50% water on light soils")
	}

	return c.JSON(http.StatusOK, plan)
}

func matchesVendor(v vendorEntry, needle string) bool {
	if strings.Contains(strings.ToLower(v.name), needle) {
		return true
	}
	for _, s := range v.services {
		if strings.Contains(s, needle) {
			return true
		}
	}

	return false
}

func bindQuery(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.NewInvalidInputError(err.Error())
	}

	return nil
}
