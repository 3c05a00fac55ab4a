package geo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/velaraptor/pocas-backend/schema"
)

const (
	logPrefix      = "geocoder"
	defaultTimeout = 5 * time.Second
)

var ErrAddressNotFound = fmt.Errorf("no location found for address")

// Geocoder - interface for resolving a free-text address into coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (schema.UserLocation, error)
}

type googleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder - new Geocoder backed by the google maps geocoding API
func NewGoogleGeocoder(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &googleGeocoder{
		client: client,
	}, nil
}

func (g *googleGeocoder) Geocode(ctx context.Context, address string) (schema.UserLocation, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Debug("resolve address")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
	})
	if nil != err {
		return schema.UserLocation{}, err
	}

	if len(results) == 0 {
		return schema.UserLocation{}, ErrAddressNotFound
	}

	location := results[0].Geometry.Location
	return schema.UserLocation{
		Lat: location.Lat,
		Lon: location.Lng,
	}, nil
}
