package model

import "time"

// User is the relational account record. Interview data is keyed to it by
// UserID but lives in the document store.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"password,omitempty"` // bcrypt hash, stripped before responses
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InterviewTopic is a selectable topic card.
type InterviewTopic struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// QuestionHistory records a generated question so repeat sessions on the
// same topic can avoid duplicates. Documents expire after 30 days via a TTL
// index on created_at.
type QuestionHistory struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       uint      `bson:"user_id" json:"user_id"`
	Topic        string    `bson:"topic" json:"topic"`
	QuestionText string    `bson:"question_text" json:"question_text"`
	QuestionKey  string    `bson:"question_key" json:"question_key"`
	SessionID    string    `bson:"session_id" json:"session_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
