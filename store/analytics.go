package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velaraptor/pocas-backend/schema"
)

// Analytics - best-effort platform analytics writes and reads. Failures here
// must never fail the request that produced them.
type Analytics interface {
	SaveUserData(ctx context.Context, data schema.UserData) error
	SaveIPHit(ctx context.Context, hit schema.IPHit) error
	ZipCodeCounts(ctx context.Context) ([]schema.ZipCodeCount, error)
	UserDataByZip(ctx context.Context, zipCode string, start, end *time.Time) ([]schema.UserData, error)
}

func (m *mongoDB) SaveUserData(ctx context.Context, data schema.UserData) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserDataCollection)
	if _, err := c.InsertOne(ctx, data); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("insert user data")
		return err
	}

	return nil
}

func (m *mongoDB) SaveIPHit(ctx context.Context, hit schema.IPHit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.IPHitCollection)
	if _, err := c.InsertOne(ctx, hit); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("insert ip hit")
		return err
	}

	return nil
}

// ZipCodeCounts groups questionnaire submissions by zip code
func (m *mongoDB) ZipCodeCounts(ctx context.Context) ([]schema.ZipCodeCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserDataCollection)

	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$zip_code",
				"count": bson.M{"$sum": 1},
			},
		},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make([]schema.ZipCodeCount, 0)
	for cursor.Next(ctx) {
		var count schema.ZipCodeCount
		if err := cursor.Decode(&count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, cursor.Err()
}

// UserDataByZip returns submissions for a zip code within an optional window
func (m *mongoDB) UserDataByZip(ctx context.Context, zipCode string, start, end *time.Time) ([]schema.UserData, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserDataCollection)

	query := bson.M{"zip_code": zipCode}
	if start != nil {
		window := bson.M{"$gte": *start}
		if end != nil {
			window["$lt"] = *end
		}
		query["time"] = window
	}

	opts := options.Find().SetSort(bson.M{"time": -1})
	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]schema.UserData, 0)
	for cursor.Next(ctx) {
		var record schema.UserData
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, cursor.Err()
}
