package main

import (
	"log"

	"github.com/ayush-verma790/question-gen-sub001/internal/cache"
	"github.com/ayush-verma790/question-gen-sub001/internal/config"
	"github.com/ayush-verma790/question-gen-sub001/internal/handlers"
	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/ayush-verma790/question-gen-sub001/internal/repositories"
	"github.com/ayush-verma790/question-gen-sub001/internal/repositories/postgres"
	"github.com/ayush-verma790/question-gen-sub001/internal/services"
	"github.com/ayush-verma790/question-gen-sub001/internal/utils"
	"github.com/ayush-verma790/question-gen-sub001/internal/validator"
	"github.com/ayush-verma790/question-gen-sub001/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	var repo repositories.QuestionRepository
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Warn("Database unavailable, persistence disabled", "error", err)
	} else {
		if err := db.AutoMigrate(&models.QuestionRecord{}); err != nil {
			logger.LogError(err, "Database migration failed")
		}
		repo = postgres.NewQuestionRepository(db)
	}

	var xmlCache cache.XMLCache
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, XML caching disabled", "error", err)
	} else {
		xmlCache = cache.NewRedisCache(redisClient, logger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		logger.LogError(err, "Failed to create event publisher")
	}
	if publisher != nil {
		defer publisher.Close()
	}

	v := validator.New()
	questionService := services.NewQuestionService(repo, xmlCache, publisher, v, logger)
	importService := services.NewImportService(questionService, publisher, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(questionService, importService, v, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting question generation service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
