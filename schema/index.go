package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexServiceCollection())
	panicIfError(m.IndexQuestionCollection())
	panicIfError(m.IndexUserDataCollection())
}

// IndexServiceCollection backs the `$near`/`$geoNear` candidate queries and
// the duplicate-name check on ingestion.
func (m *MongoDBIndexer) IndexServiceCollection() error {
	if err := m.createIndex(ServiceCollection, mongo.IndexModel{
		Keys: bson.M{
			"loc": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ServiceCollection, mongo.IndexModel{
		Keys: bson.M{
			"name": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexQuestionCollection() error {
	return m.createIndex(QuestionCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexUserDataCollection() error {
	return m.createIndex(UserDataCollection, mongo.IndexModel{
		Keys: bson.M{
			"zip_code": 1,
		},
	})
}
