package llm

import (
	"context"
	"encoding/json"
	"strings"

	"prepwise-backend-V1.0/internal/model"
)

// QuestionGenerator produces natural-language interview questions for a
// topic. Implementations may fail or return fewer questions than requested;
// callers substitute fallback templates in that case.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, topic, difficulty, questionType string, count int, avoid []string) ([]string, error)
}

// AnswerScorer evaluates a single answer. The returned ScoreResult carries
// either a parsed feedback record or the raw provider text that failed to
// parse; callers substitute DefaultFeedback on the unparseable branch.
type AnswerScorer interface {
	ScoreAnswer(ctx context.Context, question, answer, topic, difficulty string) (ScoreResult, error)
}

// ScoreResult is the tagged outcome of a scoring call: Feedback is non-nil
// when the provider response parsed cleanly, otherwise Raw holds the
// unparseable text.
type ScoreResult struct {
	Feedback *model.Feedback
	Raw      string
}

// Parsed reports whether the result carries usable feedback.
func (r ScoreResult) Parsed() bool {
	return r.Feedback != nil
}

// ParseFeedback decodes a provider response into a feedback record. The
// response may be bare JSON or JSON wrapped in a markdown code fence. An
// undecodable response yields an unparseable result holding the raw text.
func ParseFeedback(raw string) ScoreResult {
	payload := stripCodeFence(raw)

	var parsed struct {
		Accuracy     float64  `json:"accuracy"`
		Correct      bool     `json:"correct"`
		Explanation  string   `json:"explanation"`
		Strengths    []string `json:"strengths"`
		Improvements []string `json:"improvements"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return ScoreResult{Raw: raw}
	}

	accuracy := parsed.Accuracy
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 100 {
		accuracy = 100
	}

	return ScoreResult{Feedback: &model.Feedback{
		Accuracy:     accuracy,
		Correct:      parsed.Correct,
		Explanation:  parsed.Explanation,
		Strengths:    parsed.Strengths,
		Improvements: parsed.Improvements,
	}}
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
