package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise-backend-V1.0/internal/model"
)

// TopicRepository stores the selectable topic cards.
type TopicRepository interface {
	ListTopics(ctx context.Context) ([]model.InterviewTopic, error)
	FindByTitle(ctx context.Context, title string) (*model.InterviewTopic, error)
	CreateTopic(ctx context.Context, topic *model.InterviewTopic) error
}

type topicRepository struct {
	col *mongo.Collection
}

func NewTopicRepository(db *mongo.Database) TopicRepository {
	return &topicRepository{col: db.Collection("interview_topics")}
}

func (r *topicRepository) ListTopics(ctx context.Context) ([]model.InterviewTopic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var topics []model.InterviewTopic
	if err := cur.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// FindByTitle matches the title case-insensitively. Returns nil when no
// topic exists with that title.
func (r *topicRepository) FindByTitle(ctx context.Context, title string) (*model.InterviewTopic, error) {
	filter := bson.M{"title": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(title) + "$",
		"$options": "i",
	}}
	var topic model.InterviewTopic
	err := r.col.FindOne(ctx, filter).Decode(&topic)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) CreateTopic(ctx context.Context, topic *model.InterviewTopic) error {
	if topic.ID == "" {
		topic.ID = primitive.NewObjectID().Hex()
	}
	topic.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, topic)
	return err
}
