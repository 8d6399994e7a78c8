package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend-V1.0/internal/service"
	"prepwise-backend-V1.0/utilities"
)

type InterviewController struct {
	InterviewService service.InterviewService
	ExportService    service.ExportService
}

func NewInterviewController(interviewService service.InterviewService, exportService service.ExportService) *InterviewController {
	return &InterviewController{
		InterviewService: interviewService,
		ExportService:    exportService,
	}
}

// CreateSession generates the questions and starts a new session.
func (ic *InterviewController) CreateSession(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result, err := ic.InterviewService.CreateSession(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SubmitAnswer records and scores an answer, advancing the session.
func (ic *InterviewController) SubmitAnswer(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		SessionID  string `json:"sessionId"`
		QuestionID string `json:"questionId"`
		AnswerText string `json:"answerText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result, err := ic.InterviewService.SubmitAnswer(c.Request.Context(), userID, req.SessionID, req.QuestionID, req.AnswerText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Answer saved",
		"nextQuestion": result.NextQuestion,
		"completed":    result.Completed,
		"feedback":     result.Feedback,
	})
}

// GetSession returns the current state of a session.
func (ic *InterviewController) GetSession(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	session, err := ic.InterviewService.GetSession(c.Request.Context(), userID, c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetResults returns the full results report for a session.
func (ic *InterviewController) GetResults(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	report, err := ic.InterviewService.GetResults(c.Request.Context(), userID, c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportResults streams the results report as a PDF download.
func (ic *InterviewController) ExportResults(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	data, filename, err := ic.ExportService.ExportResults(c.Request.Context(), userID, c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
