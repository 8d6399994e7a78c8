package model

import (
	"fmt"
	"math"
	"time"
)

// Scoring thresholds for the results report. Fixed, not configurable.
const (
	PassThreshold         = 70.0
	CriticalThreshold     = 50.0
	EasyRecThreshold      = 70.0
	AdvancedRecThreshold  = 60.0
	PassLabel             = "Pass"
	NeedsImprovementLabel = "Needs Improvement"
)

// DifficultyPerformance is the per-difficulty breakdown bucket.
type DifficultyPerformance struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	AvgScore float64 `json:"avgScore"`
}

// Recommendation is one advisory item derived from the score thresholds.
type Recommendation struct {
	Type        string `json:"type"` // critical, improvement, success
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SessionInfo summarizes the session itself inside a results report.
type SessionInfo struct {
	ID                string    `json:"id"`
	Topic             string    `json:"topic"`
	Difficulty        string    `json:"difficulty"`
	QuestionType      string    `json:"questionType"`
	CreatedAt         time.Time `json:"createdAt"`
	Completed         bool      `json:"completed"`
	TotalQuestions    int       `json:"totalQuestions"`
	AnsweredQuestions int       `json:"answeredQuestions"`
}

// OverallPerformance holds the headline numbers of a results report.
type OverallPerformance struct {
	AverageScore   int    `json:"averageScore"`
	HighestScore   int    `json:"highestScore"`
	LowestScore    int    `json:"lowestScore"`
	CompletionRate int    `json:"completionRate"`
	PassRate       string `json:"passRate"`
}

// QuestionResult is the per-question view inside a results report.
type QuestionResult struct {
	ID             string    `json:"id"`
	QuestionNumber int       `json:"questionNumber"`
	QuestionText   string    `json:"questionText"`
	AnswerText     string    `json:"answerText,omitempty"`
	Difficulty     string    `json:"difficulty"`
	Feedback       *Feedback `json:"feedback,omitempty"`
}

// ResultsReport is the read-only derived view of a session. Building it
// never mutates the session; it is safe to build any number of times.
type ResultsReport struct {
	SessionInfo             SessionInfo                      `json:"sessionInfo"`
	OverallPerformance      OverallPerformance               `json:"overallPerformance"`
	PerformanceByDifficulty map[string]DifficultyPerformance `json:"performanceByDifficulty"`
	SessionFeedback         *Feedback                        `json:"sessionFeedback,omitempty"`
	Questions               []QuestionResult                 `json:"questions"`
	Recommendations         []Recommendation                 `json:"recommendations"`
}

// BuildResultsReport computes the full results report for a session.
func BuildResultsReport(s *InterviewSession) ResultsReport {
	total := len(s.Questions)

	answered := 0
	var scores []float64
	for i := range s.Questions {
		if s.Questions[i].Answered() {
			answered++
		}
		if s.Questions[i].Feedback != nil {
			scores = append(scores, s.Questions[i].Feedback.Accuracy)
		}
	}

	average, highest, lowest := 0.0, 0.0, 0.0
	if len(scores) > 0 {
		sum := 0.0
		highest, lowest = scores[0], scores[0]
		for _, sc := range scores {
			sum += sc
			highest = math.Max(highest, sc)
			lowest = math.Min(lowest, sc)
		}
		average = sum / float64(len(scores))
	}

	completionRate := 0
	if total > 0 {
		completionRate = int(math.Round(float64(answered) / float64(total) * 100))
	}

	passRate := NeedsImprovementLabel
	if average >= PassThreshold {
		passRate = PassLabel
	}

	byDifficulty := performanceByDifficulty(s.Questions)

	questions := make([]QuestionResult, 0, total)
	for i := range s.Questions {
		q := &s.Questions[i]
		questions = append(questions, QuestionResult{
			ID:             q.ID,
			QuestionNumber: i + 1,
			QuestionText:   q.QuestionText,
			AnswerText:     q.AnswerText,
			Difficulty:     q.Difficulty,
			Feedback:       q.Feedback,
		})
	}

	return ResultsReport{
		SessionInfo: SessionInfo{
			ID:                s.ID,
			Topic:             s.Topic,
			Difficulty:        s.Difficulty,
			QuestionType:      s.QuestionType,
			CreatedAt:         s.CreatedAt,
			Completed:         s.Completed(),
			TotalQuestions:    total,
			AnsweredQuestions: answered,
		},
		OverallPerformance: OverallPerformance{
			AverageScore:   int(math.Round(average)),
			HighestScore:   int(math.Round(highest)),
			LowestScore:    int(math.Round(lowest)),
			CompletionRate: completionRate,
			PassRate:       passRate,
		},
		PerformanceByDifficulty: byDifficulty,
		SessionFeedback:         s.SessionFeedback,
		Questions:               questions,
		Recommendations:         buildRecommendations(average, byDifficulty, s.Topic),
	}
}

func performanceByDifficulty(questions []Question) map[string]DifficultyPerformance {
	perf := make(map[string]DifficultyPerformance, len(DifficultyOrder))
	for _, d := range DifficultyOrder {
		perf[d] = DifficultyPerformance{}
	}

	for i := range questions {
		difficulty := questions[i].Difficulty
		if difficulty == "" {
			difficulty = DifficultyIntermediate
		}
		bucket, ok := perf[difficulty]
		if !ok {
			continue
		}
		bucket.Total++
		if fb := questions[i].Feedback; fb != nil {
			if fb.Correct {
				bucket.Correct++
			}
			bucket.AvgScore += fb.Accuracy
		}
		perf[difficulty] = bucket
	}

	for _, d := range DifficultyOrder {
		bucket := perf[d]
		if bucket.Total > 0 {
			bucket.AvgScore /= float64(bucket.Total)
		}
		perf[d] = bucket
	}
	return perf
}

// buildRecommendations derives the advisory items: the overall-performance
// item first, then the difficulty-specific ones in fixed difficulty order.
func buildRecommendations(average float64, perf map[string]DifficultyPerformance, topic string) []Recommendation {
	recs := make([]Recommendation, 0, 3)

	switch {
	case average < CriticalThreshold:
		recs = append(recs, Recommendation{
			Type:        "critical",
			Title:       "Focus on Fundamentals",
			Description: fmt.Sprintf("Your %s fundamentals need strengthening. Consider reviewing basic concepts and practicing more.", topic),
		})
	case average < PassThreshold:
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Build on Your Foundation",
			Description: fmt.Sprintf("You have a good foundation in %s. Focus on practicing more complex scenarios.", topic),
		})
	default:
		recs = append(recs, Recommendation{
			Type:        "success",
			Title:       "Strong Performance",
			Description: fmt.Sprintf("Excellent work! You demonstrate strong %s knowledge. Keep practicing to maintain this level.", topic),
		})
	}

	if perf[DifficultyEasy].AvgScore < EasyRecThreshold {
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Master the Basics",
			Description: "Focus on fundamental concepts before moving to advanced topics.",
		})
	}

	if adv := perf[DifficultyAdvanced]; adv.Total > 0 && adv.AvgScore < AdvancedRecThreshold {
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Advanced Topics Need Work",
			Description: "Consider additional study on advanced concepts and real-world applications.",
		})
	}

	return recs
}
