package model

import (
	"strings"
	"time"
)

// Difficulty labels. Every question carries exactly one of these.
const (
	DifficultyEasy         = "easy"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// DifficultyOrder is the fixed presentation order for per-difficulty
// breakdowns and recommendations.
var DifficultyOrder = []string{DifficultyEasy, DifficultyIntermediate, DifficultyAdvanced}

// Feedback is the scored evaluation of a single answer, or the session-wide
// aggregate once the session completes.
type Feedback struct {
	Accuracy     float64  `bson:"accuracy" json:"accuracy"`
	Correct      bool     `bson:"correct" json:"correct"`
	Explanation  string   `bson:"explanation" json:"explanation"`
	Strengths    []string `bson:"strengths,omitempty" json:"strengths,omitempty"`
	Improvements []string `bson:"improvements,omitempty" json:"improvements,omitempty"`
}

// Question is an element of a session's question list. It is owned
// exclusively by its session and persisted as part of the session document.
type Question struct {
	ID           string    `bson:"id" json:"id"`
	QuestionText string    `bson:"question_text" json:"question_text"`
	Difficulty   string    `bson:"difficulty" json:"difficulty"`
	AnswerText   string    `bson:"answer_text,omitempty" json:"answer_text,omitempty"`
	Feedback     *Feedback `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// Answered reports whether the question carries a non-blank answer.
func (q *Question) Answered() bool {
	return strings.TrimSpace(q.AnswerText) != ""
}

// InterviewSession is one interview-practice attempt: an ordered question
// list plus progression state. The whole struct is the unit of persistence;
// mutations happen in memory and the document is replaced as a whole.
type InterviewSession struct {
	ID                   string     `bson:"_id,omitempty" json:"id"`
	UserID               uint       `bson:"user_id" json:"user_id"`
	Topic                string     `bson:"topic" json:"topic"`
	Difficulty           string     `bson:"difficulty" json:"difficulty"`
	QuestionType         string     `bson:"question_type" json:"question_type"`
	Questions            []Question `bson:"questions" json:"questions"`
	CurrentQuestionIndex int        `bson:"current_question_index" json:"current_question_index"`
	SessionFeedback      *Feedback  `bson:"session_feedback,omitempty" json:"session_feedback,omitempty"`
	CreatedAt            time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at" json:"updated_at"`
}

// Completed reports whether the cursor has reached the terminal state.
func (s *InterviewSession) Completed() bool {
	return s.CurrentQuestionIndex >= len(s.Questions)
}

// CurrentQuestion returns the question at the cursor, or nil when the
// session is completed.
func (s *InterviewSession) CurrentQuestion() *Question {
	if s.Completed() {
		return nil
	}
	return &s.Questions[s.CurrentQuestionIndex]
}

// QuestionIndexByID resolves a question id within the session's question
// list. Returns -1 when the id does not belong to this session.
func (s *InterviewSession) QuestionIndexByID(id string) int {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return i
		}
	}
	return -1
}

// RecordAnswer writes the answer onto the question at idx. Resubmission
// replaces the prior answer.
func (s *InterviewSession) RecordAnswer(idx int, answerText string) {
	s.Questions[idx].AnswerText = answerText
}

// AdvanceIfCurrent moves the cursor past idx, but only when idx is the
// question currently at the cursor. Answering the last question sets the
// cursor to len(questions), the terminal state. Out-of-order submissions
// leave the cursor where it is so no question gets skipped. Reports whether
// the cursor moved.
func (s *InterviewSession) AdvanceIfCurrent(idx int) bool {
	if idx != s.CurrentQuestionIndex {
		return false
	}
	if s.CurrentQuestionIndex < len(s.Questions)-1 {
		s.CurrentQuestionIndex++
	} else {
		s.CurrentQuestionIndex = len(s.Questions)
	}
	return true
}

// AggregateFeedback computes the session-level aggregate: the arithmetic
// mean of accuracy over all scored questions (0 when nothing is scored).
// The aggregate is written once; later calls never overwrite it. Reports
// whether this call wrote the aggregate.
func (s *InterviewSession) AggregateFeedback() bool {
	if s.SessionFeedback != nil {
		return false
	}

	var sum float64
	var scored int
	for i := range s.Questions {
		if s.Questions[i].Feedback != nil {
			sum += s.Questions[i].Feedback.Accuracy
			scored++
		}
	}

	avg := 0.0
	if scored > 0 {
		avg = sum / float64(scored)
	}

	s.SessionFeedback = &Feedback{
		Accuracy:    avg,
		Correct:     avg >= PassThreshold,
		Explanation: "Session average accuracy across all scored answers.",
	}
	return true
}

