package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"prepwise-backend-V1.0/internal/llm"
	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
	logger "prepwise-backend-V1.0/pkg/logging"
	"prepwise-backend-V1.0/utilities"
)

const (
	defaultQuestionCount = 5
	historyLookback      = 50
)

// CreateSessionRequest carries the session parameters chosen by the user.
type CreateSessionRequest struct {
	Topic             string `json:"topic"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
	Difficulty        string `json:"difficulty"`
	QuestionType      string `json:"questionType"`
}

// CreateSessionResult is returned to the caller after session creation.
type CreateSessionResult struct {
	SessionID      string          `json:"sessionId"`
	Question       *model.Question `json:"question"`
	TotalQuestions int             `json:"totalQuestions"`
}

// SubmitAnswerResult reports the outcome of an answer submission.
type SubmitAnswerResult struct {
	NextQuestion *model.Question `json:"nextQuestion,omitempty"`
	Completed    bool            `json:"completed"`
	Feedback     *model.Feedback `json:"feedback"`
}

// SessionCreatedEvent is published on the event bus after a session is
// persisted; the history listener records the generated questions from it.
type SessionCreatedEvent struct {
	Session *model.InterviewSession
}

// SessionCompletedEvent is published when a session reaches its terminal
// state.
type SessionCompletedEvent struct {
	Session *model.InterviewSession
}

// InterviewService owns the interview session lifecycle: creation with
// generated questions, answer submission with cursor progression and
// scoring, and results reporting. All mutations follow the same cycle: load
// the session document, mutate it in memory, replace it as a whole.
type InterviewService interface {
	CreateSession(ctx context.Context, userID uint, req CreateSessionRequest) (*CreateSessionResult, error)
	SubmitAnswer(ctx context.Context, userID uint, sessionID, questionID, answerText string) (*SubmitAnswerResult, error)
	GetSession(ctx context.Context, userID uint, sessionID string) (*model.InterviewSession, error)
	GetResults(ctx context.Context, userID uint, sessionID string) (*model.ResultsReport, error)
}

type interviewService struct {
	sessionRepo  repository.SessionRepository
	historyRepo  repository.HistoryRepository
	generator    llm.QuestionGenerator
	scorer       llm.AnswerScorer
	bus          *utilities.EventBus
	maxQuestions int
}

func NewInterviewService(
	sessionRepo repository.SessionRepository,
	historyRepo repository.HistoryRepository,
	generator llm.QuestionGenerator,
	scorer llm.AnswerScorer,
	bus *utilities.EventBus,
	maxQuestions int,
) InterviewService {
	if maxQuestions <= 0 {
		maxQuestions = 20
	}
	return &interviewService{
		sessionRepo:  sessionRepo,
		historyRepo:  historyRepo,
		generator:    generator,
		scorer:       scorer,
		bus:          bus,
		maxQuestions: maxQuestions,
	}
}

func (s *interviewService) CreateSession(ctx context.Context, userID uint, req CreateSessionRequest) (*CreateSessionResult, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}

	difficulty := strings.ToLower(strings.TrimSpace(req.Difficulty))
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyIntermediate, model.DifficultyAdvanced:
	default:
		difficulty = model.DifficultyIntermediate
	}

	questionType := strings.TrimSpace(req.QuestionType)
	if questionType == "" {
		questionType = "Mixed"
	}

	count := req.NumberOfQuestions
	if count == 0 {
		count = defaultQuestionCount
	}
	if count < 1 {
		count = 1
	}
	if count > s.maxQuestions {
		count = s.maxQuestions
	}

	texts := s.generateQuestionTexts(ctx, userID, topic, difficulty, questionType, count)

	questions := make([]model.Question, 0, len(texts))
	for _, text := range texts {
		questions = append(questions, model.Question{
			ID:           uuid.New().String(),
			QuestionText: text,
			Difficulty:   difficulty,
		})
	}

	session := &model.InterviewSession{
		ID:                   uuid.New().String(),
		UserID:               userID,
		Topic:                topic,
		Difficulty:           difficulty,
		QuestionType:         questionType,
		Questions:            questions,
		CurrentQuestionIndex: 0,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.bus.Publish(utilities.EventSessionCreated, SessionCreatedEvent{Session: session})

	return &CreateSessionResult{
		SessionID:      session.ID,
		Question:       &session.Questions[0],
		TotalQuestions: len(session.Questions),
	}, nil
}

// generateQuestionTexts calls the provider and falls back to the template
// library when the provider fails, returns malformed output or comes up
// short. Session creation never fails because of provider downtime.
func (s *interviewService) generateQuestionTexts(ctx context.Context, userID uint, topic, difficulty, questionType string, count int) []string {
	var avoid []string
	if history, err := s.historyRepo.RecentQuestions(ctx, userID, topic, historyLookback); err != nil {
		logger.Warn("question history lookup failed, continuing without it: %v", err)
	} else {
		for _, h := range history {
			avoid = append(avoid, h.QuestionText)
		}
	}

	texts, err := s.generator.GenerateQuestions(ctx, topic, difficulty, questionType, count, avoid)
	if err != nil {
		logger.Warn("question generation failed, using fallback templates: %v", err)
		return llm.FallbackQuestions(topic, count)
	}
	if len(texts) < count {
		logger.Warn("question generation returned %d of %d questions, topping up with fallback templates", len(texts), count)
		texts = append(texts, llm.FallbackQuestions(topic, count-len(texts))...)
	}
	return texts
}

// SubmitAnswer records the answer on the resolved question, scores it,
// advances the cursor when the answered question is the current one and
// aggregates session feedback when the session completes. The question is
// resolved by its id; answering a question other than the current one
// records the answer without moving the cursor.
func (s *interviewService) SubmitAnswer(ctx context.Context, userID uint, sessionID, questionID, answerText string) (*SubmitAnswerResult, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(questionID) == "" {
		return nil, fmt.Errorf("%w: sessionId and questionId are required", ErrInvalidInput)
	}
	answer := strings.TrimSpace(answerText)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	session, err := s.sessionRepo.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, ErrSessionCompleted
	}

	idx := session.QuestionIndexByID(questionID)
	if idx < 0 {
		return nil, ErrQuestionNotFound
	}

	session.RecordAnswer(idx, answer)

	question := &session.Questions[idx]
	question.Feedback = s.scoreAnswer(ctx, session, question, answer)

	session.AdvanceIfCurrent(idx)
	completed := session.Completed()
	if completed {
		session.AggregateFeedback()
	}

	if err := s.sessionRepo.Replace(ctx, session); err != nil {
		return nil, err
	}

	if completed {
		s.bus.Publish(utilities.EventSessionCompleted, SessionCompletedEvent{Session: session})
	}

	return &SubmitAnswerResult{
		NextQuestion: session.CurrentQuestion(),
		Completed:    completed,
		Feedback:     question.Feedback,
	}, nil
}

// scoreAnswer delegates to the scoring provider and substitutes the fixed
// default feedback on failure or an unparseable response. This is a
// fallback policy, not a retry: the caller never sees provider downtime.
func (s *interviewService) scoreAnswer(ctx context.Context, session *model.InterviewSession, question *model.Question, answer string) *model.Feedback {
	result, err := s.scorer.ScoreAnswer(ctx, question.QuestionText, answer, session.Topic, question.Difficulty)
	if err != nil {
		logger.Warn("answer scoring failed for session %s, assigning default feedback: %v", session.ID, err)
		return llm.DefaultFeedback()
	}
	if !result.Parsed() {
		logger.Warn("answer scoring returned unparseable output for session %s, assigning default feedback", session.ID)
		return llm.DefaultFeedback()
	}
	return result.Feedback
}

func (s *interviewService) GetSession(ctx context.Context, userID uint, sessionID string) (*model.InterviewSession, error) {
	return s.sessionRepo.GetByIDAndUser(ctx, sessionID, userID)
}

func (s *interviewService) GetResults(ctx context.Context, userID uint, sessionID string) (*model.ResultsReport, error) {
	session, err := s.sessionRepo.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	report := model.BuildResultsReport(session)
	return &report, nil
}
