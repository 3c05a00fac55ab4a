package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velaraptor/pocas-backend/schema"
)

// mongo server error code for inserting a document that violates a unique index
const duplicateKeyCode = 11000

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pocas")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := migrateMongo(); nil != err {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	if err := setupCollectionQuestions(ctx, client); err != nil {
		fmt.Println("failed to set up collection `questions`: ", err)
		return err
	}

	return nil
}

func setupCollectionQuestions(ctx context.Context, client *mongo.Client) error {
	fmt.Println("initialize questions collection")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.QuestionCollection)

	questions := make([]interface{}, 0, len(schema.OfficialQuestions))
	for _, q := range schema.OfficialQuestions {
		questions = append(questions, q)
	}

	_, err := c.InsertMany(ctx, questions, options.InsertMany().SetOrdered(false))
	if err != nil {
		if errs, hasErr := err.(mongo.BulkWriteException); hasErr {
			allDuplicates := len(errs.WriteErrors) > 0
			for _, writeError := range errs.WriteErrors {
				if writeError.Code != duplicateKeyCode {
					allDuplicates = false
				}
			}
			if allDuplicates {
				return nil
			}
		}
	}

	return err
}
