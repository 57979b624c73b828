package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jalsetu/config"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNominatim_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "28.6", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.2", r.URL.Query().Get("lon"))
		assert.Equal(t, "jalsetu-test/1.0", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{"display_name":"Connaught Place, New Delhi, Delhi, India"}`))
	}))
	defer server.Close()

	geocoder, err := NewNominatim(&config.GeocoderConfig{
		BaseURL:   server.URL,
		Timeout:   time.Second,
		UserAgent: "jalsetu-test/1.0",
	}, discardLogger())
	require.NoError(t, err)

	address, err := geocoder.ReverseGeocode(context.Background(), orb.Point{77.2, 28.6})
	require.NoError(t, err)
	assert.Equal(t, "Connaught Place, New Delhi, Delhi, India", address)
}

func TestNominatim_NoAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	geocoder, err := NewNominatim(&config.GeocoderConfig{BaseURL: server.URL, Timeout: time.Second}, discardLogger())
	require.NoError(t, err)

	_, err = geocoder.ReverseGeocode(context.Background(), orb.Point{0.1, 0.1})
	assert.True(t, errors.Is(err, ErrAddressNotFound))
}

type countingGeocoder struct {
	calls   int
	address string
	err     error
}

func (g *countingGeocoder) ReverseGeocode(_ context.Context, _ orb.Point) (string, error) {
	g.calls++

	return g.address, g.err
}

func TestCached_SameCellHitsCache(t *testing.T) {
	upstream := &countingGeocoder{address: "Connaught Place"}
	geocoder, err := NewCached(upstream, 8, discardLogger())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := geocoder.ReverseGeocode(ctx, orb.Point{77.21670, 28.63150})
	require.NoError(t, err)
	// A few metres away, same 7-character cell.
	second, err := geocoder.ReverseGeocode(ctx, orb.Point{77.21672, 28.63151})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.calls)

	_, err = geocoder.ReverseGeocode(ctx, orb.Point{72.8777, 19.0760})
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
}

func TestCached_FailuresAreNotCached(t *testing.T) {
	upstream := &countingGeocoder{err: domainerrors.NewNetworkError(errors.New("timeout"), "GET reverse")}
	geocoder, err := NewCached(upstream, 8, discardLogger())
	require.NoError(t, err)

	for range 2 {
		_, err := geocoder.ReverseGeocode(context.Background(), orb.Point{77.2, 28.6})
		assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	}
	assert.Equal(t, 2, upstream.calls)
}

func TestNewCached_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewCached(&countingGeocoder{}, 0, discardLogger())
	assert.Error(t, err)
}
