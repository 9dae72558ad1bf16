package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/ayush-verma790/question-gen-sub001/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = errors.New("question record not found")

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) repositories.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, record *models.QuestionRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create question record: %w", err)
	}
	return nil
}

func (r *questionRepository) Upsert(ctx context.Context, record *models.QuestionRecord) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identifier"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "title", "model", "xml", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert question record: %w", err)
	}
	return nil
}

func (r *questionRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.QuestionRecord, error) {
	var record models.QuestionRecord
	err := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question record: %w", err)
	}
	return &record, nil
}

func (r *questionRepository) GetByIdentifiers(ctx context.Context, identifiers []string) ([]*models.QuestionRecord, error) {
	var records []*models.QuestionRecord
	err := r.db.WithContext(ctx).Where("identifier IN ?", identifiers).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get question records: %w", err)
	}
	return records, nil
}

func (r *questionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.QuestionRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.QuestionRecord{})

	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR identifier ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count question records: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var records []*models.QuestionRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list question records: %w", err)
	}
	return records, total, nil
}

func (r *questionRepository) Delete(ctx context.Context, identifier string) error {
	result := r.db.WithContext(ctx).Where("identifier = ?", identifier).Delete(&models.QuestionRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete question record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
