package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend-V1.0/internal/repository"
	"prepwise-backend-V1.0/internal/service"
	logger "prepwise-backend-V1.0/pkg/logging"
)

// respondError maps service failures to HTTP responses. Unexpected faults
// become a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionCompleted),
		errors.Is(err, service.ErrTopicExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, repository.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
