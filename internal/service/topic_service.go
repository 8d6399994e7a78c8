package service

import (
	"context"
	"fmt"
	"strings"

	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
)

// TopicService manages the selectable topic cards.
type TopicService interface {
	ListTopics(ctx context.Context) ([]model.InterviewTopic, error)
	CreateTopic(ctx context.Context, title, description string) (*model.InterviewTopic, error)
}

type topicService struct {
	topicRepo repository.TopicRepository
}

func NewTopicService(topicRepo repository.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) ListTopics(ctx context.Context) ([]model.InterviewTopic, error) {
	return s.topicRepo.ListTopics(ctx)
}

func (s *topicService) CreateTopic(ctx context.Context, title, description string) (*model.InterviewTopic, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if len(title) < 2 {
		return nil, fmt.Errorf("%w: title is required and should be at least 2 characters", ErrInvalidInput)
	}
	if len(description) < 5 {
		return nil, fmt.Errorf("%w: description is required and should be at least 5 characters", ErrInvalidInput)
	}

	existing, err := s.topicRepo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTopicExists
	}

	topic := &model.InterviewTopic{
		Title:       title,
		Description: description,
	}
	if err := s.topicRepo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}
