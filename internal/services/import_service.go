package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/events"
	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/ayush-verma790/question-gen-sub001/internal/utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ImportService turns spreadsheet rows into question models and runs them
// through the normal generate/persist path. Only the row-oriented types
// (choice, text-entry) are importable this way; rich types need the editor.
type ImportService interface {
	ImportQuestionsFromFile(ctx context.Context, reader io.Reader, filename string, creatorID string) (*ImportResult, error)
	ImportQuestionsFromCSV(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error)
	ImportQuestionsFromExcel(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error)
}

type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ImportResult struct {
	JobID         string            `json:"job_id"`
	TotalRows     int               `json:"total_rows"`
	ProcessedRows int               `json:"processed_rows"`
	SuccessCount  int               `json:"success_count"`
	ErrorCount    int               `json:"error_count"`
	Errors        []RowError        `json:"errors,omitempty"`
	Generated     []*GenerateResult `json:"generated,omitempty"`
}

type importService struct {
	questions QuestionService
	publisher events.EventPublisher
	logger    utils.Logger
}

// NewImportService wires the import path. publisher may be nil; per-row
// question.imported events are then skipped.
func NewImportService(questions QuestionService, publisher events.EventPublisher, logger utils.Logger) ImportService {
	return &importService{
		questions: questions,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *importService) ImportQuestionsFromFile(ctx context.Context, reader io.Reader, filename string, creatorID string) (*ImportResult, error) {
	s.logger.Info("Starting file import", "filename", filename, "creator_id", creatorID)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return s.ImportQuestionsFromCSV(ctx, reader, creatorID)
	case ".xlsx", ".xls":
		return s.ImportQuestionsFromExcel(ctx, reader, creatorID)
	default:
		return nil, ErrUnsupportedImportType
	}
}

// Required spreadsheet columns. Options and correct answers are
// pipe-separated lists; for choice rows correct_answers holds option
// identifiers (opt_1, opt_2, ... assigned in options order).
var requiredColumns = []string{"question_type", "identifier", "prompt", "correct_answers"}

func (s *importService) ImportQuestionsFromCSV(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return s.importRows(ctx, records, creatorID)
}

func (s *importService) ImportQuestionsFromExcel(ctx context.Context, reader io.Reader, creatorID string) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return s.importRows(ctx, rows, creatorID)
}

func (s *importService) importRows(ctx context.Context, rows [][]string, creatorID string) (*ImportResult, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("import needs a header row and at least one data row")
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range requiredColumns {
		if _, exists := headerMap[col]; !exists {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	result := &ImportResult{
		JobID:     uuid.NewString(),
		TotalRows: len(rows) - 1,
	}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		result.ProcessedRows++

		req, rowErr := buildRowRequest(row, headerMap, rowNum, creatorID)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.ErrorCount++
			continue
		}

		generated, err := s.questions.Generate(ctx, req)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			result.ErrorCount++
			continue
		}

		result.Generated = append(result.Generated, generated)
		result.SuccessCount++

		if s.publisher != nil {
			_ = s.publisher.PublishQuestionEvent(ctx, events.EventQuestionImported, events.QuestionImportedEvent{
				Identifier:   generated.Identifier,
				QuestionType: generated.Type,
			})
		}
	}

	s.logger.Info("Import completed",
		"job_id", result.JobID,
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)
	return result, nil
}

func buildRowRequest(row []string, headerMap map[string]int, rowNum int, creatorID string) (*GenerateRequest, *RowError) {
	cell := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	questionType := models.QuestionType(cell("question_type"))
	identifier := cell("identifier")
	if identifier == "" {
		return nil, &RowError{Row: rowNum, Field: "identifier", Message: "is required"}
	}

	title := cell("title")
	prompt := []models.ContentBlock{{
		ID:      identifier + "_prompt",
		Type:    models.BlockText,
		Content: cell("prompt"),
	}}
	correctAnswers := splitList(cell("correct_answers"))

	var model interface{}
	switch questionType {
	case models.MultipleChoice:
		options := splitList(cell("options"))
		if len(options) < 2 {
			return nil, &RowError{Row: rowNum, Field: "options", Message: "must have at least 2 options"}
		}
		correct := make(map[string]bool, len(correctAnswers))
		for _, c := range correctAnswers {
			correct[c] = true
		}
		q := models.MultipleChoiceQuestion{
			Identifier: identifier,
			Title:      title,
			Prompt:     prompt,
			MaxChoices: 1,
		}
		if len(correctAnswers) > 1 {
			q.MaxChoices = len(correctAnswers)
		}
		for i, text := range options {
			optID := fmt.Sprintf("opt_%d", i+1)
			q.Options = append(q.Options, models.ChoiceOption{
				Identifier: optID,
				Content: []models.ContentBlock{{
					ID:      optID + "_content",
					Type:    models.BlockText,
					Content: text,
				}},
				IsCorrect: correct[optID],
			})
		}
		model = q

	case models.TextEntry:
		model = models.TextEntryQuestion{
			Identifier:     identifier,
			Title:          title,
			Prompt:         prompt,
			CorrectAnswers: correctAnswers,
		}

	default:
		return nil, &RowError{Row: rowNum, Field: "question_type", Message: "only choice and text-entry rows can be imported"}
	}

	data, err := json.Marshal(model)
	if err != nil {
		return nil, &RowError{Row: rowNum, Message: err.Error()}
	}
	return &GenerateRequest{
		Type:      questionType,
		Data:      data,
		Persist:   true,
		CreatedBy: creatorID,
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
