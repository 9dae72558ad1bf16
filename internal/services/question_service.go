package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayush-verma790/question-gen-sub001/internal/cache"
	"github.com/ayush-verma790/question-gen-sub001/internal/events"
	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/ayush-verma790/question-gen-sub001/internal/qti"
	"github.com/ayush-verma790/question-gen-sub001/internal/repositories"
	"github.com/ayush-verma790/question-gen-sub001/internal/utils"
	"github.com/ayush-verma790/question-gen-sub001/internal/validator"
	"gorm.io/datatypes"
)

const xmlCacheTTL = time.Hour

// GenerateRequest is the dispatch-boundary payload: a question type plus its
// matching model as raw JSON.
type GenerateRequest struct {
	Type    models.QuestionType `json:"type" validate:"required,question_type"`
	Data    json.RawMessage     `json:"data" validate:"required"`
	Persist bool                `json:"persist"`

	CreatedBy string `json:"-"`
}

type GenerateResult struct {
	Identifier string              `json:"identifier"`
	Title      string              `json:"title"`
	Type       models.QuestionType `json:"type"`
	Filename   string              `json:"filename"`
	XML        string              `json:"xml"`
}

// ParseResult carries the reconstructed model; Model is one of the question
// structs, discriminated by Type.
type ParseResult struct {
	Type  models.QuestionType `json:"type"`
	Model interface{}         `json:"model"`
}

type QuestionService interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)
	ParseXML(ctx context.Context, questionType models.QuestionType, doc string) (*ParseResult, error)
	GetXML(ctx context.Context, identifier string) (string, error)
	Get(ctx context.Context, identifier string) (*models.QuestionRecord, error)
	List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.QuestionRecord, int64, error)
	Delete(ctx context.Context, identifier string) error
	ExportPackage(ctx context.Context, identifiers []string) ([]byte, error)
}

type questionService struct {
	repo      repositories.QuestionRepository
	cache     cache.XMLCache
	publisher events.EventPublisher
	validator *validator.Validator
	logger    utils.Logger
}

// NewQuestionService wires the core serialization layer to its collaborators.
// repo, cache and publisher may each be nil and are then skipped; generation
// itself needs none of them.
func NewQuestionService(
	repo repositories.QuestionRepository,
	xmlCache cache.XMLCache,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger utils.Logger,
) QuestionService {
	return &questionService{
		repo:      repo,
		cache:     xmlCache,
		publisher: publisher,
		validator: v,
		logger:    logger,
	}
}

func (s *questionService) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	if err := s.validator.GetQuestionValidator().ValidateContent(req.Type, req.Data); err != nil {
		return nil, err
	}

	result, modelJSON, err := generateXML(req.Type, req.Data)
	if err != nil {
		return nil, err
	}
	result.Filename = result.Identifier + ".xml"

	if s.cache != nil {
		// best effort; a cold cache only costs a regeneration
		_ = s.cache.Set(ctx, result.Identifier, result.XML, xmlCacheTTL)
	}

	if req.Persist && s.repo != nil {
		record := &models.QuestionRecord{
			Identifier: result.Identifier,
			Type:       req.Type,
			Title:      result.Title,
			Model:      datatypes.JSON(modelJSON),
			XML:        result.XML,
			CreatedBy:  req.CreatedBy,
		}
		if err := s.repo.Upsert(ctx, record); err != nil {
			return nil, err
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishQuestionEvent(ctx, events.EventQuestionGenerated, events.QuestionGeneratedEvent{
			Identifier:   result.Identifier,
			QuestionType: req.Type,
			Title:        result.Title,
			XMLBytes:     len(result.XML),
			CreatedBy:    req.CreatedBy,
		}); err != nil {
			s.logger.Warn("failed to publish question.generated event",
				"identifier", result.Identifier, "error", err)
		}
	}

	s.logger.Info("Generated QTI document",
		"identifier", result.Identifier,
		"type", req.Type,
		"xml_bytes", len(result.XML))
	return result, nil
}

// generateXML dispatches to the per-type generator. The raw JSON is returned
// normalized through the typed model so the stored form matches what was
// actually serialized.
func generateXML(questionType models.QuestionType, data json.RawMessage) (*GenerateResult, []byte, error) {
	switch questionType {
	case models.Hottext:
		var q models.HottextQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrQuestionInvalidContent, err)
		}
		return buildResult(questionType, q.Identifier, q.Title, qti.GenerateHottextXML(&q), q)

	case models.MultipleChoice:
		var q models.MultipleChoiceQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrQuestionInvalidContent, err)
		}
		return buildResult(questionType, q.Identifier, q.Title, qti.GenerateChoiceXML(&q), q)

	case models.Ordering:
		var q models.OrderQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrQuestionInvalidContent, err)
		}
		return buildResult(questionType, q.Identifier, q.Title, qti.GenerateOrderXML(&q), q)

	case models.Matching:
		var q models.MatchQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrQuestionInvalidContent, err)
		}
		return buildResult(questionType, q.Identifier, q.Title, qti.GenerateMatchXML(&q), q)

	case models.TextEntry:
		var q models.TextEntryQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrQuestionInvalidContent, err)
		}
		return buildResult(questionType, q.Identifier, q.Title, qti.GenerateTextEntryXML(&q), q)

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrQuestionInvalidType, questionType)
	}
}

func buildResult(questionType models.QuestionType, identifier, title, xml string, model interface{}) (*GenerateResult, []byte, error) {
	modelJSON, err := json.Marshal(model)
	if err != nil {
		return nil, nil, err
	}
	return &GenerateResult{
		Identifier: identifier,
		Title:      title,
		Type:       questionType,
		XML:        xml,
	}, modelJSON, nil
}

func (s *questionService) ParseXML(ctx context.Context, questionType models.QuestionType, doc string) (*ParseResult, error) {
	var (
		model interface{}
		err   error
	)

	switch questionType {
	case models.Ordering:
		model, err = qti.ParseOrderXML(doc)
	case models.Matching:
		model, err = qti.ParseMatchXML(doc)
	case models.MultipleChoice:
		model, err = qti.ParseChoiceXML(doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedParseType, questionType)
	}

	if err != nil {
		s.logger.Warn("QTI parse failed", "type", questionType, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}
	return &ParseResult{Type: questionType, Model: model}, nil
}

func (s *questionService) GetXML(ctx context.Context, identifier string) (string, error) {
	if s.cache != nil {
		if xml, ok, err := s.cache.Get(ctx, identifier); err == nil && ok {
			return xml, nil
		}
	}

	record, err := s.Get(ctx, identifier)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, identifier, record.XML, xmlCacheTTL)
	}
	return record.XML, nil
}

func (s *questionService) Get(ctx context.Context, identifier string) (*models.QuestionRecord, error) {
	if s.repo == nil {
		return nil, ErrQuestionNotFound
	}
	record, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, identifier)
	}
	return record, nil
}

func (s *questionService) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.QuestionRecord, int64, error) {
	if s.repo == nil {
		return nil, 0, nil
	}
	return s.repo.List(ctx, filters)
}

func (s *questionService) Delete(ctx context.Context, identifier string) error {
	if s.repo == nil {
		return ErrQuestionNotFound
	}
	if err := s.repo.Delete(ctx, identifier); err != nil {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, identifier)
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, identifier)
	}
	if s.publisher != nil {
		_ = s.publisher.PublishQuestionEvent(ctx, events.EventQuestionDeleted, map[string]string{"identifier": identifier})
	}
	return nil
}

func (s *questionService) ExportPackage(ctx context.Context, identifiers []string) ([]byte, error) {
	if len(identifiers) == 0 {
		return nil, ErrEmptyPackage
	}
	if s.repo == nil {
		return nil, ErrQuestionNotFound
	}

	records, err := s.repo.GetByIdentifiers(ctx, identifiers)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrQuestionNotFound
	}

	items := make([]qti.PackageItem, 0, len(records))
	for _, r := range records {
		items = append(items, qti.PackageItem{
			Identifier: r.Identifier,
			Title:      r.Title,
			XML:        r.XML,
		})
	}

	pkg, err := qti.BuildPackage(items)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishQuestionEvent(ctx, events.EventPackageExported, events.PackageExportedEvent{
			Identifiers: identifiers,
			SizeBytes:   len(pkg),
		})
	}
	return pkg, nil
}
