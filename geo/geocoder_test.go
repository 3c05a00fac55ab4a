package geo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Hits the live geocoding API, skipped unless GOOGLE_MAP_APIKEY is set.
func TestGeocode(t *testing.T) {
	apiKey := os.Getenv("GOOGLE_MAP_APIKEY")
	if apiKey == "" {
		t.Skip("GOOGLE_MAP_APIKEY not set, skipping geocoding tests")
	}

	geocoder, err := NewGoogleGeocoder(apiKey)
	assert.NoError(t, err)

	loc, err := geocoder.Geocode(context.Background(), "100 Congress Ave, Austin, TX 78701")
	assert.NoError(t, err)
	assert.InDelta(t, 30.26, loc.Lat, 0.1)
	assert.InDelta(t, -97.74, loc.Lon, 0.1)
}

func TestGeocodeNotFound(t *testing.T) {
	apiKey := os.Getenv("GOOGLE_MAP_APIKEY")
	if apiKey == "" {
		t.Skip("GOOGLE_MAP_APIKEY not set, skipping geocoding tests")
	}

	geocoder, err := NewGoogleGeocoder(apiKey)
	assert.NoError(t, err)

	_, err = geocoder.Geocode(context.Background(), "zzzzzz qqqqqq xxxxxx 00000 nowhere")
	assert.Error(t, err)
}
