// Package geocode resolves coordinates to display addresses through a
// Nominatim-compatible reverse geocoder, with a per-cell address cache.
package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"jalsetu/config"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/restclient"

	"github.com/google/go-querystring/query"
	"github.com/paulmach/orb"
)

const reversePath = "reverse"

// ErrAddressNotFound is returned when the geocoder has no address for a point.
var ErrAddressNotFound = errors.New("address not found")

type reverseQuery struct {
	Format    string  `url:"format"`
	Latitude  float64 `url:"lat"`
	Longitude float64 `url:"lon"`
	Zoom      int     `url:"zoom,omitempty"`
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

type nominatim struct {
	client *restclient.Client
}

// NewNominatim creates a ReverseGeocoder for the configured endpoint.
func NewNominatim(cfg *config.GeocoderConfig, logger *slog.Logger, opts ...restclient.Option) (service.ReverseGeocoder, error) {
	opts = append([]restclient.Option{restclient.WithHeader("User-Agent", cfg.UserAgent)}, opts...)

	client, err := restclient.New(cfg.BaseURL, cfg.Timeout, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &nominatim{client: client}, nil
}

func (n *nominatim) ReverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	values, err := query.Values(reverseQuery{
		Format:    "jsonv2",
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	})
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrInternal.WithCause(err).WithDetails("encode reverse query"))
	}

	var resp reverseResponse
	if err := n.client.Do(ctx, http.MethodGet, reversePath, values, nil, &resp); err != nil {
		return "", err
	}

	address := strings.TrimSpace(resp.DisplayName)
	if address == "" {
		return "", errors.Wrapf(ErrAddressNotFound, "%s", resp.Error)
	}

	return address, nil
}
