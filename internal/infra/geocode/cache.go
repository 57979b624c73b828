package geocode

import (
	"context"
	"log/slog"

	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
)

// CellPrecision is the geohash length of a cache cell, roughly 150m square.
const CellPrecision = 7

type cachedGeocoder struct {
	next   service.ReverseGeocoder
	cache  *lru.Cache
	logger *slog.Logger
}

// NewCached remembers the address of up to size geohash cells. Failures are not cached.
func NewCached(next service.ReverseGeocoder, size int, logger *slog.Logger) (service.ReverseGeocoder, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "create geocode cache")
	}

	return &cachedGeocoder{
		next:   next,
		cache:  cache,
		logger: logger,
	}, nil
}

func (c *cachedGeocoder) ReverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	cell := geohash.EncodeWithPrecision(point.Lat(), point.Lon(), CellPrecision)

	if cached, ok := c.cache.Get(cell); ok {
		c.logger.Debug("Geocode cache hit", slog.String("cell", cell))

		return cached.(string), nil
	}

	address, err := c.next.ReverseGeocode(ctx, point)
	if err != nil {
		return "", err
	}
	c.cache.Add(cell, address)

	return address, nil
}
