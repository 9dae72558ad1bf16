package repositories

import (
	"context"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// QuestionFilters narrows List results.
type QuestionFilters struct {
	Type   *models.QuestionType
	Search string // matches title or identifier
	Limit  int
	Offset int
}

// QuestionRepository persists generated questions so the editor can reload
// and re-edit them later.
type QuestionRepository interface {
	Create(ctx context.Context, record *models.QuestionRecord) error
	Upsert(ctx context.Context, record *models.QuestionRecord) error
	GetByIdentifier(ctx context.Context, identifier string) (*models.QuestionRecord, error)
	GetByIdentifiers(ctx context.Context, identifiers []string) ([]*models.QuestionRecord, error)
	List(ctx context.Context, filters QuestionFilters) ([]*models.QuestionRecord, int64, error)
	Delete(ctx context.Context, identifier string) error
}
