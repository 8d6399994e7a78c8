package controller

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"prepwise-backend-V1.0/internal/config"
	"prepwise-backend-V1.0/internal/service"
	"prepwise-backend-V1.0/pkg/middleware"
	"prepwise-backend-V1.0/utilities"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	cfg *config.APIConfig,
	authService service.AuthService,
	userService service.UserService,
	interviewService service.InterviewService,
	topicService service.TopicService,
	exportService service.ExportService,
) {
	authCtrl := NewAuthController(authService)
	r.POST("/auth", authCtrl.Authenticate)

	// User routes.
	userCtrl := NewUserController(userService)
	userRoutes := r.Group("/user", utilities.AuthMiddleware())
	{
		userRoutes.GET("/profile", userCtrl.GetProfile)
		userRoutes.PUT("/profile", userCtrl.UpdateProfile)
		userRoutes.DELETE("/profile", userCtrl.DeleteAccount)
		userRoutes.GET("/sessions", userCtrl.GetSessions)
		userRoutes.GET("/stats", userCtrl.GetStats)
	}

	// Topic cards are public.
	topicCtrl := NewTopicController(topicService)
	topicRoutes := r.Group("/interview/topics")
	{
		topicRoutes.GET("", topicCtrl.ListTopics)
		topicRoutes.POST("", topicCtrl.CreateTopic)
	}

	// Interview routes. Session creation hits the question-generation
	// provider, so it carries the rate limiter on top of auth.
	interviewCtrl := NewInterviewController(interviewService, exportService)
	interviewRoutes := r.Group("/interview", utilities.AuthMiddleware())
	{
		rps := rate.Limit(1)
		if cfg.LLM.RequestsPerMin > 0 {
			rps = rate.Limit(float64(cfg.LLM.RequestsPerMin) / 60.0)
		}
		interviewRoutes.POST("/sessions", middleware.RateLimitMiddleware(rps, 3), interviewCtrl.CreateSession)
		interviewRoutes.GET("/sessions/:sessionId", interviewCtrl.GetSession)
		interviewRoutes.POST("/answer", interviewCtrl.SubmitAnswer)
		interviewRoutes.GET("/results/:sessionId", interviewCtrl.GetResults)
		interviewRoutes.GET("/results/:sessionId/export", interviewCtrl.ExportResults)
	}
}
