package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise-backend-V1.0/internal/model"
)

// ErrSessionNotFound is returned when a session does not exist or is not
// owned by the requesting user.
var ErrSessionNotFound = errors.New("interview session not found")

// SessionRepository persists interview session aggregates. Mutations go
// through Replace: the caller loads the document, mutates it in memory and
// replaces it as a whole.
type SessionRepository interface {
	Create(ctx context.Context, session *model.InterviewSession) error
	GetByIDAndUser(ctx context.Context, id string, userID uint) (*model.InterviewSession, error)
	Replace(ctx context.Context, session *model.InterviewSession) error
	ListByUser(ctx context.Context, userID uint, limit int64) ([]model.InterviewSession, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

type sessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) SessionRepository {
	return &sessionRepository{col: db.Collection("interview_sessions")}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.InterviewSession) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, session)
	return err
}

func (r *sessionRepository) GetByIDAndUser(ctx context.Context, id string, userID uint) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Replace(ctx context.Context, session *model.InterviewSession) error {
	session.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": session.ID, "user_id": session.UserID}, session)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID uint, limit int64) ([]model.InterviewSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sessions []model.InterviewSession
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
