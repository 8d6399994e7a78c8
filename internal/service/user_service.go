package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"prepwise-backend-V1.0/internal/config"
	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
	logger "prepwise-backend-V1.0/pkg/logging"
	"prepwise-backend-V1.0/utilities"
)

const (
	sessionListLimit  = 50
	favoriteTopicsCap = 6
)

// SessionSummary is the listing projection of a session.
type SessionSummary struct {
	ID                 string    `json:"id"`
	Topic              string    `json:"topic"`
	Difficulty         string    `json:"difficulty"`
	TotalQuestions     int       `json:"totalQuestions"`
	CompletedQuestions int       `json:"completedQuestions"`
	CreatedAt          time.Time `json:"createdAt"`
	Status             string    `json:"status"` // completed, in-progress
	Score              int       `json:"score"`
}

// UserStats aggregates a user's practice history.
type UserStats struct {
	TotalSessions     int      `json:"totalSessions"`
	CompletedSessions int      `json:"completedSessions"`
	AverageScore      int      `json:"averageScore"`
	TotalQuestions    int      `json:"totalQuestions"`
	FavoriteTopics    []string `json:"favoriteTopics"`
}

// UserService covers profile management plus the session listing and stats
// views built on top of the session store.
type UserService interface {
	GetProfile(userID uint) (*model.User, error)
	UpdateProfile(userID uint, name, email string) (*model.User, string, error)
	DeleteAccount(ctx context.Context, userID uint) error
	GetSessions(ctx context.Context, userID uint) ([]SessionSummary, error)
	GetStats(ctx context.Context, userID uint) (*UserStats, error)
}

type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	historyRepo repository.HistoryRepository
}

func NewUserService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, historyRepo repository.HistoryRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
	}
}

func (s *userService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile changes name and email. When the email changes, a fresh
// token is returned so the client can keep its claims in sync.
func (s *userService) UpdateProfile(userID uint, name, email string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, "", fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if email != user.Email {
		taken, err := s.userRepo.EmailTakenByOther(email, userID)
		if err != nil {
			return nil, "", err
		}
		if taken {
			return nil, "", ErrEmailTaken
		}
	}

	emailChanged := email != user.Email
	user.Name = name
	user.Email = email
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, "", err
	}

	newToken := ""
	if emailChanged {
		newToken, err = utilities.GenerateToken(user)
		if err != nil {
			return nil, "", err
		}
	}

	user.Password = ""
	return user, newToken, nil
}

// DeleteAccount removes the account and every document keyed to it.
func (s *userService) DeleteAccount(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.sessionRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.historyRepo.DeleteByUser(ctx, userID); err != nil {
		logger.Warn("failed to delete question history for user %d: %v", userID, err)
	}
	return s.userRepo.DeleteUser(userID)
}

func (s *userService) GetSessions(ctx context.Context, userID uint) ([]SessionSummary, error) {
	limit := int64(sessionListLimit)
	if c := config.GetConfig(); c != nil && c.Pagination.PageSize > 0 {
		limit = int64(c.Pagination.PageSize)
	}
	sessions, err := s.sessionRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, 0, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		answered := 0
		for j := range sess.Questions {
			if sess.Questions[j].Answered() {
				answered++
			}
		}

		status := "in-progress"
		if sess.Completed() {
			status = "completed"
		}

		score := 0
		if sess.SessionFeedback != nil {
			score = int(math.Round(sess.SessionFeedback.Accuracy))
		}

		summaries = append(summaries, SessionSummary{
			ID:                 sess.ID,
			Topic:              sess.Topic,
			Difficulty:         sess.Difficulty,
			TotalQuestions:     len(sess.Questions),
			CompletedQuestions: answered,
			CreatedAt:          sess.CreatedAt,
			Status:             status,
			Score:              score,
		})
	}
	return summaries, nil
}

func (s *userService) GetStats(ctx context.Context, userID uint) (*UserStats, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{}
	topicCounts := make(map[string]int)
	scoreSum, scored := 0.0, 0

	for i := range sessions {
		sess := &sessions[i]
		stats.TotalSessions++
		if sess.Completed() {
			stats.CompletedSessions++
		}
		for j := range sess.Questions {
			if sess.Questions[j].Answered() {
				stats.TotalQuestions++
			}
		}
		if sess.SessionFeedback != nil {
			scoreSum += sess.SessionFeedback.Accuracy
			scored++
		}
		topic := sess.Topic
		if topic == "" {
			topic = "General"
		}
		topicCounts[topic]++
	}

	if scored > 0 {
		stats.AverageScore = int(math.Round(scoreSum / float64(scored)))
	}
	stats.FavoriteTopics = favoriteTopics(topicCounts, favoriteTopicsCap)
	return stats, nil
}

// favoriteTopics returns the most practiced topics, most frequent first,
// alphabetical within equal counts.
func favoriteTopics(counts map[string]int, limit int) []string {
	topics := make([]string, 0, len(counts))
	for topic := range counts {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return topics[i] < topics[j]
	})
	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}
