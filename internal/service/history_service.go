package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
	logger "prepwise-backend-V1.0/pkg/logging"
	"prepwise-backend-V1.0/utilities"
)

// InitHistoryEventListeners subscribes the question-history recorder to the
// event bus. Recording happens off the request path; a failure here never
// affects the session itself.
func InitHistoryEventListeners(historyRepo repository.HistoryRepository) {
	utilities.GlobalEventBus.Subscribe(utilities.EventSessionCreated, func(data interface{}) {
		evt, ok := data.(SessionCreatedEvent)
		if !ok || evt.Session == nil {
			logger.Warn("session created event carried unexpected payload %T", data)
			return
		}

		session := evt.Session
		entries := make([]model.QuestionHistory, 0, len(session.Questions))
		for i := range session.Questions {
			entries = append(entries, model.QuestionHistory{
				UserID:       session.UserID,
				Topic:        session.Topic,
				QuestionText: session.Questions[i].QuestionText,
				QuestionKey:  NormalizeQuestionKey(session.Questions[i].QuestionText),
				SessionID:    session.ID,
			})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := historyRepo.RecordQuestions(ctx, entries); err != nil {
			logger.Warn("failed to record question history for session %s: %v", session.ID, err)
		}
	})
}

// NormalizeQuestionKey lowercases the question, strips everything but
// letters, digits and spaces and collapses runs of whitespace, producing a
// stable key for duplicate detection.
func NormalizeQuestionKey(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
