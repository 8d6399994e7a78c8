package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
)

// ExportService renders a session's results report as a downloadable PDF.
type ExportService interface {
	ExportResults(ctx context.Context, userID uint, sessionID string) ([]byte, string, error)
}

type exportService struct {
	sessionRepo repository.SessionRepository
}

func NewExportService(sessionRepo repository.SessionRepository) ExportService {
	return &exportService{sessionRepo: sessionRepo}
}

func (s *exportService) ExportResults(ctx context.Context, userID uint, sessionID string) ([]byte, string, error) {
	session, err := s.sessionRepo.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, "", err
	}
	report := model.BuildResultsReport(session)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 16)
	pdf.AddPage()

	pdf.Cell(0, 10, fmt.Sprintf("Interview Results: %s", report.SessionInfo.Topic))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Difficulty: %s | Type: %s | Questions: %d | Answered: %d | Created: %s",
		report.SessionInfo.Difficulty,
		report.SessionInfo.QuestionType,
		report.SessionInfo.TotalQuestions,
		report.SessionInfo.AnsweredQuestions,
		report.SessionInfo.CreatedAt.Format("2006-01-02 15:04"),
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Overall Performance")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	op := report.OverallPerformance
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Average score: %d\nHighest score: %d\nLowest score: %d\nCompletion rate: %d%%\nResult: %s",
		op.AverageScore, op.HighestScore, op.LowestScore, op.CompletionRate, op.PassRate,
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Performance by Difficulty")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, difficulty := range model.DifficultyOrder {
		perf := report.PerformanceByDifficulty[difficulty]
		if perf.Total == 0 {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d questions, %d correct, average %.1f",
			capitalize(difficulty), perf.Total, perf.Correct, perf.AvgScore))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Recommendations")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, rec := range report.Recommendations {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, rec.Title)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, rec.Description, "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Questions")
	pdf.Ln(9)
	for _, q := range report.Questions {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("Q%d (%s): %s", q.QuestionNumber, q.Difficulty, q.QuestionText), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		if strings.TrimSpace(q.AnswerText) != "" {
			pdf.MultiCell(0, 6, "Answer: "+q.AnswerText, "", "L", false)
		} else {
			pdf.MultiCell(0, 6, "Answer: (not answered)", "", "L", false)
		}
		if q.Feedback != nil {
			pdf.MultiCell(0, 6, fmt.Sprintf("Score: %.0f | %s", q.Feedback.Accuracy, q.Feedback.Explanation), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render results PDF: %w", err)
	}

	filename := fmt.Sprintf("interview_results_%s.pdf", session.ID)
	return buf.Bytes(), filename, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
