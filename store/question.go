package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velaraptor/pocas-backend/schema"
)

// QuestionStore - operations over the questionnaire collection
type QuestionStore interface {
	FetchQuestions(ctx context.Context) ([]schema.Question, error)
}

// FetchQuestions returns all questions sorted ascending by id. Storage does
// not guarantee insertion order and the answer vector is positional, so the
// sort is part of the contract.
func (m *mongoDB) FetchQuestions(ctx context.Context) ([]schema.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.QuestionCollection)

	opts := options.Find().SetSort(bson.M{"id": 1})
	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list questions")
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := make([]schema.Question, 0)
	for cursor.Next(ctx) {
		var q schema.Question
		if err := cursor.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, cursor.Err()
}
