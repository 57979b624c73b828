package geocode

import (
	"log/slog"

	"jalsetu/config"
	"jalsetu/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the ReverseGeocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the cached Nominatim geocoder from configuration.
func New(params Params) (service.ReverseGeocoder, error) {
	upstream, err := NewNominatim(params.Config.Geocoder, params.Logger)
	if err != nil {
		return nil, err
	}

	return NewCached(upstream, params.Config.Location.GeocodeCacheSize, params.Logger)
}
