package handlers

import (
	"github.com/ayush-verma790/question-gen-sub001/internal/services"
	"github.com/ayush-verma790/question-gen-sub001/internal/utils"
	"github.com/ayush-verma790/question-gen-sub001/internal/validator"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	questionHandler *QuestionHandler
}

func NewHandlerManager(
	questionService services.QuestionService,
	importService services.ImportService,
	v *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		questionHandler: NewQuestionHandler(questionService, importService, v, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		questions := v1.Group("/questions")
		{
			questions.POST("/generate", hm.questionHandler.GenerateQuestion)
			questions.POST("/parse", hm.questionHandler.ParseQuestion)
			questions.POST("/import", hm.questionHandler.ImportQuestions)
			questions.POST("/package", hm.questionHandler.ExportPackage)
			questions.GET("", hm.questionHandler.ListQuestions)
			questions.GET("/:identifier", hm.questionHandler.GetQuestion)
			questions.GET("/:identifier/xml", hm.questionHandler.DownloadQuestionXML)
			questions.DELETE("/:identifier", hm.questionHandler.DeleteQuestion)
		}
	}
}
