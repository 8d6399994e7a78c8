package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
)

func TestExportResultsProducesPDF(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	sessionRepo.sessions["s1"] = &model.InterviewSession{
		ID: "s1", UserID: 1, Topic: "Go", Difficulty: model.DifficultyEasy, QuestionType: "Mixed",
		Questions: []model.Question{
			{ID: "q1", QuestionText: "What is a goroutine?", Difficulty: model.DifficultyEasy,
				AnswerText: "a lightweight thread", Feedback: &model.Feedback{Accuracy: 90, Correct: true, Explanation: "good"}},
		},
		CurrentQuestionIndex: 1,
		SessionFeedback:      &model.Feedback{Accuracy: 90, Correct: true},
	}
	svc := NewExportService(sessionRepo)

	data, filename, err := svc.ExportResults(context.Background(), 1, "s1")
	require.NoError(t, err)
	assert.Equal(t, "interview_results_s1.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportResultsUnknownSession(t *testing.T) {
	svc := NewExportService(newFakeSessionRepo())

	_, _, err := svc.ExportResults(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
