package llm

import (
	"fmt"

	"prepwise-backend-V1.0/internal/model"
)

// FallbackAccuracy is the fixed score assigned when the scoring provider is
// unavailable or returns an unparseable response.
const FallbackAccuracy = 50

// fallbackTemplates parameterize a topic into generic interview questions.
// Used when the question-generation provider fails so session creation never
// depends on provider uptime.
var fallbackTemplates = []string{
	"Explain the core concepts of %s and why they matter in practice.",
	"Describe a challenging problem you solved using %s. What was your approach?",
	"What are the most common mistakes developers make when working with %s?",
	"How would you explain %s to someone with no technical background?",
	"Compare %s with an alternative technology or approach. When would you choose each?",
	"Walk through how you would debug a production issue involving %s.",
	"What recent developments in %s do you find most significant, and why?",
	"Describe how you would design a system that relies heavily on %s.",
	"What trade-offs should a team consider before adopting %s?",
	"How do you keep your %s skills up to date?",
}

// FallbackQuestions returns count template questions parameterized by topic.
// Templates repeat once count exceeds the template library size.
func FallbackQuestions(topic string, count int) []string {
	if count <= 0 {
		return nil
	}
	questions := make([]string, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, fmt.Sprintf(fallbackTemplates[i%len(fallbackTemplates)], topic))
	}
	return questions
}

// DefaultFeedback is the fixed feedback record substituted when scoring
// fails. The request still succeeds; only answer-quality fidelity is lost.
func DefaultFeedback() *model.Feedback {
	return &model.Feedback{
		Accuracy:    FallbackAccuracy,
		Correct:     false,
		Explanation: "Automatic evaluation was unavailable for this answer. A neutral score was assigned; review the question and your answer manually.",
		Improvements: []string{
			"Retry this question later for a detailed evaluation.",
		},
	}
}
