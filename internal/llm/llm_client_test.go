package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedbackBareJSON(t *testing.T) {
	raw := `{"accuracy": 85, "correct": true, "explanation": "solid answer", "strengths": ["clarity"], "improvements": ["add examples"]}`

	result := ParseFeedback(raw)

	require.True(t, result.Parsed())
	assert.Equal(t, 85.0, result.Feedback.Accuracy)
	assert.True(t, result.Feedback.Correct)
	assert.Equal(t, "solid answer", result.Feedback.Explanation)
	assert.Equal(t, []string{"clarity"}, result.Feedback.Strengths)
	assert.Equal(t, []string{"add examples"}, result.Feedback.Improvements)
}

func TestParseFeedbackCodeFence(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"accuracy\": 70, \"correct\": true, \"explanation\": \"ok\"}\n```"},
		{"plain fence", "```\n{\"accuracy\": 70, \"correct\": true, \"explanation\": \"ok\"}\n```"},
		{"padded", "  ```json\n{\"accuracy\": 70, \"correct\": true, \"explanation\": \"ok\"}\n```  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseFeedback(tc.raw)
			require.True(t, result.Parsed())
			assert.Equal(t, 70.0, result.Feedback.Accuracy)
		})
	}
}

func TestParseFeedbackClampsAccuracy(t *testing.T) {
	high := ParseFeedback(`{"accuracy": 150, "correct": true, "explanation": "x"}`)
	require.True(t, high.Parsed())
	assert.Equal(t, 100.0, high.Feedback.Accuracy)

	low := ParseFeedback(`{"accuracy": -5, "correct": false, "explanation": "x"}`)
	require.True(t, low.Parsed())
	assert.Equal(t, 0.0, low.Feedback.Accuracy)
}

func TestParseFeedbackUnparseable(t *testing.T) {
	raw := "Sorry, I cannot evaluate this answer."

	result := ParseFeedback(raw)

	assert.False(t, result.Parsed())
	assert.Nil(t, result.Feedback)
	assert.Equal(t, raw, result.Raw)
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions("Kubernetes", 3)

	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.Contains(t, q, "Kubernetes")
	}
}

func TestFallbackQuestionsCyclesTemplates(t *testing.T) {
	questions := FallbackQuestions("Go", len(fallbackTemplates)+2)

	require.Len(t, questions, len(fallbackTemplates)+2)
	assert.Equal(t, questions[0], questions[len(fallbackTemplates)])
}

func TestFallbackQuestionsZeroCount(t *testing.T) {
	assert.Nil(t, FallbackQuestions("Go", 0))
	assert.Nil(t, FallbackQuestions("Go", -1))
}

func TestDefaultFeedback(t *testing.T) {
	fb := DefaultFeedback()

	require.NotNil(t, fb)
	assert.Equal(t, float64(FallbackAccuracy), fb.Accuracy)
	assert.False(t, fb.Correct)
	assert.NotEmpty(t, fb.Explanation)
}
