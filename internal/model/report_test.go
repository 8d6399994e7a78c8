package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredSession() *InterviewSession {
	return &InterviewSession{
		ID:           "sess-1",
		UserID:       1,
		Topic:        "Go",
		Difficulty:   DifficultyIntermediate,
		QuestionType: "Mixed",
		Questions: []Question{
			{
				ID: "q1", QuestionText: "easy one", Difficulty: DifficultyEasy,
				AnswerText: "a1", Feedback: &Feedback{Accuracy: 90, Correct: true},
			},
			{
				ID: "q2", QuestionText: "middle one", Difficulty: DifficultyIntermediate,
				AnswerText: "a2", Feedback: &Feedback{Accuracy: 50, Correct: false},
			},
			{
				ID: "q3", QuestionText: "hard one", Difficulty: DifficultyAdvanced,
				AnswerText: "a3", Feedback: &Feedback{Accuracy: 30, Correct: false},
			},
		},
		CurrentQuestionIndex: 3,
	}
}

func TestBuildResultsReportOverall(t *testing.T) {
	report := BuildResultsReport(scoredSession())

	assert.Equal(t, 57, report.OverallPerformance.AverageScore) // (90+50+30)/3 rounded
	assert.Equal(t, 90, report.OverallPerformance.HighestScore)
	assert.Equal(t, 30, report.OverallPerformance.LowestScore)
	assert.Equal(t, 100, report.OverallPerformance.CompletionRate)
	assert.Equal(t, NeedsImprovementLabel, report.OverallPerformance.PassRate)

	assert.True(t, report.SessionInfo.Completed)
	assert.Equal(t, 3, report.SessionInfo.TotalQuestions)
	assert.Equal(t, 3, report.SessionInfo.AnsweredQuestions)
	require.Len(t, report.Questions, 3)
	assert.Equal(t, 1, report.Questions[0].QuestionNumber)
	assert.Equal(t, "q3", report.Questions[2].ID)
}

func TestBuildResultsReportByDifficulty(t *testing.T) {
	report := BuildResultsReport(scoredSession())

	perf := report.PerformanceByDifficulty
	require.Len(t, perf, 3)

	assert.Equal(t, DifficultyPerformance{Total: 1, Correct: 1, AvgScore: 90}, perf[DifficultyEasy])
	assert.Equal(t, DifficultyPerformance{Total: 1, Correct: 0, AvgScore: 50}, perf[DifficultyIntermediate])
	assert.Equal(t, DifficultyPerformance{Total: 1, Correct: 0, AvgScore: 30}, perf[DifficultyAdvanced])
}

func TestBuildResultsReportRecommendations(t *testing.T) {
	report := BuildResultsReport(scoredSession())

	// Overall item first, difficulty-specific ones after. Easy averaged 90
	// so no basics item; advanced averaged 30 so that one fires.
	require.Len(t, report.Recommendations, 2)
	assert.Equal(t, "improvement", report.Recommendations[0].Type)
	assert.Equal(t, "Build on Your Foundation", report.Recommendations[0].Title)
	assert.Contains(t, report.Recommendations[0].Description, "Go")
	assert.Equal(t, "Advanced Topics Need Work", report.Recommendations[1].Title)
}

func TestBuildResultsReportCriticalRecommendation(t *testing.T) {
	s := scoredSession()
	for i := range s.Questions {
		s.Questions[i].Feedback = &Feedback{Accuracy: 20}
	}
	report := BuildResultsReport(s)

	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, "critical", report.Recommendations[0].Type)
	assert.Equal(t, "Focus on Fundamentals", report.Recommendations[0].Title)
}

func TestBuildResultsReportSuccessRecommendation(t *testing.T) {
	s := scoredSession()
	for i := range s.Questions {
		s.Questions[i].Feedback = &Feedback{Accuracy: 85, Correct: true}
	}
	report := BuildResultsReport(s)

	assert.Equal(t, PassLabel, report.OverallPerformance.PassRate)
	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, "success", report.Recommendations[0].Type)
}

func TestBuildResultsReportNoAdvancedQuestions(t *testing.T) {
	s := scoredSession()
	s.Questions = s.Questions[:2] // drop the advanced question
	report := BuildResultsReport(s)

	for _, rec := range report.Recommendations {
		assert.NotEqual(t, "Advanced Topics Need Work", rec.Title)
	}
}

func TestBuildResultsReportEmptySession(t *testing.T) {
	s := &InterviewSession{ID: "sess-e", Topic: "Go"}
	report := BuildResultsReport(s)

	assert.Equal(t, 0, report.OverallPerformance.AverageScore)
	assert.Equal(t, 0, report.OverallPerformance.HighestScore)
	assert.Equal(t, 0, report.OverallPerformance.LowestScore)
	assert.Equal(t, 0, report.OverallPerformance.CompletionRate)
	assert.Equal(t, NeedsImprovementLabel, report.OverallPerformance.PassRate)
	assert.Empty(t, report.Questions)
}

func TestBuildResultsReportBlankDifficultyCountsAsIntermediate(t *testing.T) {
	s := &InterviewSession{
		ID:    "sess-b",
		Topic: "Go",
		Questions: []Question{
			{ID: "q1", QuestionText: "text", Feedback: &Feedback{Accuracy: 80, Correct: true}},
		},
	}
	report := BuildResultsReport(s)

	assert.Equal(t, 1, report.PerformanceByDifficulty[DifficultyIntermediate].Total)
	assert.Equal(t, 0, report.PerformanceByDifficulty[DifficultyEasy].Total)
}

func TestBuildResultsReportDoesNotMutateSession(t *testing.T) {
	s := scoredSession()
	before := *s

	_ = BuildResultsReport(s)
	_ = BuildResultsReport(s)

	assert.Equal(t, before.CurrentQuestionIndex, s.CurrentQuestionIndex)
	assert.Nil(t, s.SessionFeedback)
	assert.Len(t, s.Questions, len(before.Questions))
}
