package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/ayush-verma790/question-gen-sub001/internal/errors"
	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/ayush-verma790/question-gen-sub001/internal/repositories"
	"github.com/ayush-verma790/question-gen-sub001/internal/services"
	"github.com/ayush-verma790/question-gen-sub001/internal/utils"
	"github.com/ayush-verma790/question-gen-sub001/internal/validator"
	"github.com/gin-gonic/gin"
)

// maxParseBodySize caps inbound XML documents; realistic questions are a few
// kilobytes.
const maxParseBodySize = 2 << 20

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
	importService   services.ImportService
	validator       *validator.Validator
}

func NewQuestionHandler(
	questionService services.QuestionService,
	importService services.ImportService,
	v *validator.Validator,
	logger utils.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
		importService:   importService,
		validator:       v,
	}
}

// GenerateQuestion serializes a question model into a QTI 3.0 document and
// returns it as a downloadable XML file.
func (h *QuestionHandler) GenerateQuestion(c *gin.Context) {
	h.LogRequest(c, "Generating question XML")

	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: apperrors.ToValidationErrors(err),
		})
		return
	}

	req.CreatedBy = c.GetHeader("X-User-ID")

	result, err := h.questionService.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "application/xml", []byte(result.XML))
}

// ParseQuestion reconstructs a question model from an uploaded QTI document.
func (h *QuestionHandler) ParseQuestion(c *gin.Context) {
	questionType := models.QuestionType(c.Query("type"))
	if questionType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing question type",
			Details: "pass ?type=order|match|choice",
		})
		return
	}

	h.LogRequest(c, "Parsing question XML", "question_type", questionType)

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxParseBodySize))
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Request body must contain a QTI XML document"})
		return
	}

	result, err := h.questionService.ParseXML(c.Request.Context(), questionType, string(body))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetQuestion returns a stored question record.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))
	if identifier == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid identifier"})
		return
	}

	record, err := h.questionService.Get(c.Request.Context(), identifier)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DownloadQuestionXML returns the stored (or cached) document for a question.
func (h *QuestionHandler) DownloadQuestionXML(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))
	if identifier == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid identifier"})
		return
	}

	xml, err := h.questionService.GetXML(c.Request.Context(), identifier)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", identifier+".xml"))
	c.Data(http.StatusOK, "application/xml", []byte(xml))
}

// ListQuestions lists stored question records with optional filters.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filters := repositories.QuestionFilters{
		Search: c.Query("search"),
		Limit:  parseIntQuery(c, "limit", 20),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if t := c.Query("type"); t != "" {
		qt := models.QuestionType(t)
		filters.Type = &qt
	}

	records, total, err := h.questionService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": records,
		"total":     total,
	})
}

// DeleteQuestion removes a stored question record.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))
	if identifier == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid identifier"})
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), identifier); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Question deleted"})
}

// ExportPackage zips the requested questions with an IMS manifest.
func (h *QuestionHandler) ExportPackage(c *gin.Context) {
	var req struct {
		Identifiers []string `json:"identifiers" validate:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Exporting QTI package", "count", len(req.Identifiers))

	pkg, err := h.questionService.ExportPackage(c.Request.Context(), req.Identifiers)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="qti-package.zip"`)
	c.Data(http.StatusOK, "application/zip", pkg)
}

// ImportQuestions bulk-imports questions from an uploaded CSV or Excel file.
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "file is required"})
		return
	}
	defer file.Close()

	h.LogRequest(c, "Importing questions", "filename", header.Filename)

	result, err := h.importService.ImportQuestionsFromFile(
		c.Request.Context(), file, header.Filename, c.GetHeader("X-User-ID"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil && v >= 0 {
		return v
	}
	return fallback
}
