package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend-V1.0/internal/service"
)

type TopicController struct {
	TopicService service.TopicService
}

func NewTopicController(topicService service.TopicService) *TopicController {
	return &TopicController{TopicService: topicService}
}

func (tc *TopicController) ListTopics(c *gin.Context) {
	topics, err := tc.TopicService.ListTopics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (tc *TopicController) CreateTopic(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	topic, err := tc.TopicService.CreateTopic(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
