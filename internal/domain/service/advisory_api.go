package service

import (
	"context"
)

// CropQuery asks for crop suggestions for a farm.
type CropQuery struct {
	SoilType         string  `url:"soil_type" validate:"required"`
	Season           string  `url:"season" validate:"required"`
	IrrigationSource string  `url:"irrigation_source,omitempty"`
	FarmAreaAcres    float64 `url:"farm_area_acres,omitempty" validate:"gte=0"`
	Language         string  `url:"lang,omitempty"`
}

// CropSuggestion is one recommended crop.
type CropSuggestion struct {
	Crop              string   `json:"crop"`
	Variety           string   `json:"variety"`
	SuitabilityScore  float64  `json:"suitability_score"`
	WaterRequirement  string   `json:"water_requirement"`
	ExpectedYieldKgHa float64  `json:"expected_yield_kg_ha"`
	Notes             []string `json:"notes"`
}

// MarketQuery asks for mandi prices of a commodity.
type MarketQuery struct {
	Commodity string `url:"commodity" validate:"required"`
	State     string `url:"state,omitempty"`
	District  string `url:"district,omitempty"`
	Limit     int    `url:"limit,omitempty" validate:"gte=0,lte=100"`
}

// MarketPrice is one market quote.
type MarketPrice struct {
	Market      string  `json:"market"`
	Commodity   string  `json:"commodity"`
	Variety     string  `json:"variety"`
	MinPriceInr float64 `json:"min_price"`
	MaxPriceInr float64 `json:"max_price"`
	ModalPrice  float64 `json:"modal_price"`
	ArrivalDate string  `json:"arrival_date"`
}

// VendorQuery searches for equipment and service vendors near a point.
type VendorQuery struct {
	Query     string  `url:"q" validate:"required"`
	Latitude  float64 `url:"lat" validate:"required,latitude"`
	Longitude float64 `url:"lon" validate:"required,longitude"`
	RadiusKm  float64 `url:"radius_km,omitempty" validate:"gte=0,lte=200"`
}

// Vendor is one search hit.
type Vendor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	DistanceKm float64  `json:"distance_km"`
	Rating     float64  `json:"rating"`
	Services   []string `json:"services"`
}

// WaterQuery asks for an irrigation plan.
type WaterQuery struct {
	Crop             string  `url:"crop" validate:"required"`
	FarmAreaAcres    float64 `url:"area_acres" validate:"gt=0"`
	IrrigationSource string  `url:"irrigation_source,omitempty"`
	SoilType         string  `url:"soil_type,omitempty"`
}

// WaterPlan is the irrigation recommendation.
type WaterPlan struct {
	Crop                  string   `json:"crop"`
	DailyRequirementLiter float64  `json:"daily_requirement_liters"`
	IrrigationMethod      string   `json:"irrigation_method"`
	ScheduleDays          int      `json:"schedule_days"`
	Tips                  []string `json:"tips"`
}

// AdvisoryAPI groups the auxiliary farming endpoints.
type AdvisoryAPI interface {
	CropSuggestions(ctx context.Context, query *CropQuery) ([]CropSuggestion, error)
	MarketPrices(ctx context.Context, query *MarketQuery) ([]MarketPrice, error)
	Vendors(ctx context.Context, query *VendorQuery) ([]Vendor, error)
	WaterManagement(ctx context.Context, query *WaterQuery) (*WaterPlan, error)
}
