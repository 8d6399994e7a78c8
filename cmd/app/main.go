package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prepwise-backend-V1.0/internal/config"
	"prepwise-backend-V1.0/internal/controller"
	"prepwise-backend-V1.0/internal/db"
	"prepwise-backend-V1.0/internal/llm"
	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
	"prepwise-backend-V1.0/internal/service"
	logger "prepwise-backend-V1.0/pkg/logging"
	"prepwise-backend-V1.0/pkg/middleware"
	"prepwise-backend-V1.0/utilities"
)

const version = "1.0.0"

func main() {
	printStartUpBanner()

	// Secrets come from the environment; .env is optional.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Context.LogDir, cfg.RequestDump)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	utilities.InitJWT(jwtSecret, time.Duration(cfg.Authentication.TokenExpiryHours)*time.Hour)

	// Relational store (user accounts).
	db.InitDBFromConfig(cfg)
	if cfg.DB.Initialize {
		if err := db.GetDB().AutoMigrate(&model.User{}); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Document store (interview sessions, topics, question history).
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if cfg.Mongo.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongoFromConfig(cfg)
	defer db.CloseMongo()

	// Create repositories.
	userRepo := repository.NewUserRepository()
	sessionRepo := repository.NewSessionRepository(db.GetMongo())
	topicRepo := repository.NewTopicRepository(db.GetMongo())
	historyRepo := repository.NewHistoryRepository(db.GetMongo())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := historyRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure question history indexes: %v", err)
	}
	cancel()

	// LLM provider for question generation and answer scoring.
	llmClient := llm.NewClient(cfg.LLM.BaseURL, os.Getenv("LLM_API_KEY"), cfg.LLM.Model,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)

	// Create services.
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, sessionRepo, historyRepo)
	interviewService := service.NewInterviewService(sessionRepo, historyRepo, llmClient, llmClient, utilities.GlobalEventBus, cfg.LLM.MaxQuestionCount)
	topicService := service.NewTopicService(topicRepo)
	exportService := service.NewExportService(sessionRepo)

	service.InitHistoryEventListeners(historyRepo)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	controller.RegisterRoutes(r, cfg, authService, userService, interviewService, topicService, exportService)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	logger.Info("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}

	utilities.GlobalEventBus.Wait()
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("PREPWISE", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("PREPWISE API (v%s)\n\n", version)
}
