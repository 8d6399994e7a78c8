package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise-backend-V1.0/internal/model"
)

const historyTTL = 30 * 24 * time.Hour

// HistoryRepository records generated questions per user and topic so
// later sessions can avoid repeats. Entries expire after 30 days.
type HistoryRepository interface {
	EnsureIndexes(ctx context.Context) error
	RecordQuestions(ctx context.Context, entries []model.QuestionHistory) error
	RecentQuestions(ctx context.Context, userID uint, topic string, limit int64) ([]model.QuestionHistory, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

type historyRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) HistoryRepository {
	return &historyRepository{col: db.Collection("question_history")}
}

func (r *historyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(historyTTL.Seconds())),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "topic", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "question_key", Value: 1}},
		},
	})
	return err
}

func (r *historyRepository) RecordQuestions(ctx context.Context, entries []model.QuestionHistory) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(entries))
	now := time.Now().UTC()
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = primitive.NewObjectID().Hex()
		}
		entries[i].CreatedAt = now
		docs = append(docs, entries[i])
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *historyRepository) RecentQuestions(ctx context.Context, userID uint, topic string, limit int64) ([]model.QuestionHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID, "topic": topic}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []model.QuestionHistory
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *historyRepository) DeleteByUser(ctx context.Context, userID uint) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
