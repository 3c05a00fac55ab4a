package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velaraptor/pocas-backend/schema"
)

const (
	// MeterPerMile converts the mile radius into the meters mongodb expects.
	MeterPerMile = 1609

	// DefaultRadiusMiles bounds how far away an in-person service may be.
	DefaultRadiusMiles = 200

	DefaultRadiusMeters = DefaultRadiusMiles * MeterPerMile
)

var (
	ErrDuplicateService = fmt.Errorf("service name already exists")
)

// ServiceStore - operations over the service listing collection
type ServiceStore interface {
	AllServices(ctx context.Context) ([]schema.Service, error)
	CreateService(ctx context.Context, service schema.Service) (string, error)
	FetchCandidates(ctx context.Context, loc schema.UserLocation, radiusMeters int, tags []string) ([]schema.Service, error)
	CheckRadius(ctx context.Context, loc schema.UserLocation, radiusMeters int) (bool, error)
}

// tagCondition matches a listing whose secondary tags or primary topic
// intersect the resolved user tags.
func tagCondition(tags []string) bson.A {
	return bson.A{
		bson.M{"tags": bson.M{"$in": tags}},
		bson.M{"general_topic": bson.M{"$in": tags}},
	}
}

// FetchCandidates returns eligible listings for one ranking pass: online
// services (null `loc`) matching the tags regardless of distance, followed by
// in-person services matching the tags within radiusMeters of the user.
func (m *mongoDB) FetchCandidates(ctx context.Context, loc schema.UserLocation, radiusMeters int, tags []string) ([]schema.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceCollection)

	online, err := m.findServices(ctx, c, bson.M{
		"loc": nil,
		"$or": tagCondition(tags),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"tags":   tags,
			"error":  err,
		}).Error("query online services")
		return nil, err
	}

	nearby, err := m.findServices(ctx, c, bson.M{
		"loc": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{loc.Lon, loc.Lat},
				},
				"$maxDistance": radiusMeters,
			},
		},
		"$or": tagCondition(tags),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"tags":   tags,
			"lat":    loc.Lat,
			"lon":    loc.Lon,
			"error":  err,
		}).Error("query nearby services")
		return nil, err
	}

	return append(online, nearby...), nil
}

// CheckRadius reports whether any listing at all, tags aside, exists within
// radiusMeters of the given coordinates.
func (m *mongoDB) CheckRadius(ctx context.Context, loc schema.UserLocation, radiusMeters int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceCollection)

	pipeline := []bson.M{
		{
			"$geoNear": bson.M{
				"near": bson.M{
					"type":        "Point",
					"coordinates": bson.A{loc.Lon, loc.Lat},
				},
				"distanceField": "dist.calculated",
				"maxDistance":   radiusMeters,
				"spherical":     true,
			},
		},
		{"$limit": 1},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"lat":    loc.Lat,
			"lon":    loc.Lon,
			"error":  err,
		}).Error("check radius")
		return false, err
	}
	defer cursor.Close(ctx)

	return cursor.Next(ctx), nil
}

// AllServices returns every listing in the collection
func (m *mongoDB) AllServices(ctx context.Context) ([]schema.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceCollection)
	return m.findServices(ctx, c, bson.M{})
}

// CreateService inserts a listing unless one with the same name exists
func (m *mongoDB) CreateService(ctx context.Context, service schema.Service) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ServiceCollection)

	count, err := c.CountDocuments(ctx, bson.M{"name": service.Name})
	if err != nil {
		return "", err
	}
	if count > 0 {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"name":   service.Name,
		}).Info("found duplicate service")
		return "", ErrDuplicateService
	}

	result, err := c.InsertOne(ctx, service)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type")
	}
	return id.Hex(), nil
}

func (m *mongoDB) findServices(ctx context.Context, c *mongo.Collection, query bson.M) ([]schema.Service, error) {
	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]schema.Service, 0)
	for cursor.Next(ctx) {
		var s schema.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		if !s.ObjectID.IsZero() {
			s.ID = s.ObjectID.Hex()
		}
		services = append(services, s)
	}

	return services, cursor.Err()
}
