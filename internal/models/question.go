package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	Hottext        QuestionType = "hottext"
	MultipleChoice QuestionType = "choice"
	Ordering       QuestionType = "order"
	Matching       QuestionType = "match"
	TextEntry      QuestionType = "text-entry"
)

// AllQuestionTypes lists every interaction type a generator exists for.
var AllQuestionTypes = []QuestionType{Hottext, MultipleChoice, Ordering, Matching, TextEntry}

// ===== QUESTION MODELS (one per interaction type) =====

// Position carries the x/y coordinates the editor keeps for hottext items.
// Not serialized to XML.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type HottextItem struct {
	Identifier string            `json:"identifier" validate:"required"`
	Type       BlockType         `json:"type"` // text, html or image
	Content    string            `json:"content"`
	Styles     map[string]string `json:"styles,omitempty"`
	Position   *Position         `json:"position,omitempty"`
}

type HottextQuestion struct {
	Identifier        string            `json:"identifier" validate:"required"`
	Title             string            `json:"title"`
	Prompt            []ContentBlock    `json:"prompt"`
	Body              []ContentBlock    `json:"body"`
	Items             []HottextItem     `json:"items" validate:"min=1"`
	CorrectAnswers    []string          `json:"correct_answers"`
	CorrectFeedback   []ContentBlock    `json:"correct_feedback,omitempty"`
	IncorrectFeedback []ContentBlock    `json:"incorrect_feedback,omitempty"`
	MaxChoices        int               `json:"max_choices"`
	ContainerStyles   map[string]string `json:"container_styles,omitempty"`
	CustomCSS         string            `json:"custom_css,omitempty"`
}

type ChoiceOption struct {
	Identifier string         `json:"identifier" validate:"required"`
	Content    []ContentBlock `json:"content"`
	IsCorrect  bool           `json:"is_correct"`
	Feedback   []ContentBlock `json:"feedback,omitempty"` // inline, shown next to the option
}

type MultipleChoiceQuestion struct {
	Identifier        string         `json:"identifier" validate:"required"`
	Title             string         `json:"title"`
	Prompt            []ContentBlock `json:"prompt"`
	Options           []ChoiceOption `json:"options" validate:"min=2"`
	CorrectFeedback   []ContentBlock `json:"correct_feedback,omitempty"`
	IncorrectFeedback []ContentBlock `json:"incorrect_feedback,omitempty"`
	MaxChoices        int            `json:"max_choices"` // 1 => single cardinality, >1 => multiple
	Shuffle           bool           `json:"shuffle"`
	Orientation       string         `json:"orientation,omitempty" validate:"omitempty,oneof=horizontal vertical"`
}

type OrderOption struct {
	Identifier   string         `json:"identifier" validate:"required"`
	Content      []ContentBlock `json:"content"`
	CorrectOrder int            `json:"correct_order"` // 1-based rank, unique, contiguous
}

type OrderQuestion struct {
	Identifier        string         `json:"identifier" validate:"required"`
	Title             string         `json:"title"`
	Prompt            []ContentBlock `json:"prompt"`
	Options           []OrderOption  `json:"options" validate:"min=2"`
	CorrectFeedback   []ContentBlock `json:"correct_feedback,omitempty"`
	IncorrectFeedback []ContentBlock `json:"incorrect_feedback,omitempty"`
	Shuffle           bool           `json:"shuffle"`
	Orientation       string         `json:"orientation,omitempty" validate:"omitempty,oneof=horizontal vertical"`
}

type MatchPair struct {
	LeftID  string         `json:"left_id" validate:"required"`
	Left    []ContentBlock `json:"left"`
	RightID string         `json:"right_id" validate:"required"`
	Right   []ContentBlock `json:"right"`
}

type MatchQuestion struct {
	Identifier        string         `json:"identifier" validate:"required"`
	Title             string         `json:"title"`
	Prompt            []ContentBlock `json:"prompt"`
	Pairs             []MatchPair    `json:"pairs" validate:"min=1"`
	CorrectFeedback   []ContentBlock `json:"correct_feedback,omitempty"`
	IncorrectFeedback []ContentBlock `json:"incorrect_feedback,omitempty"`
	MaxAssociations   int            `json:"max_associations"`
	Shuffle           bool           `json:"shuffle"`
}

type TextEntryQuestion struct {
	Identifier        string         `json:"identifier" validate:"required"`
	Title             string         `json:"title"`
	Prompt            []ContentBlock `json:"prompt"`
	CorrectAnswers    []string       `json:"correct_answers" validate:"min=1"`
	CaseSensitive     bool           `json:"case_sensitive"`
	CorrectFeedback   []ContentBlock `json:"correct_feedback,omitempty"`
	IncorrectFeedback []ContentBlock `json:"incorrect_feedback,omitempty"`
	ExpectedLength    *int           `json:"expected_length,omitempty"`
	PatternMask       string         `json:"pattern_mask,omitempty"`
}

// ===== PERSISTENCE =====

// QuestionRecord is the stored form of a generated question: the editable
// model as JSONB plus the XML it last produced.
type QuestionRecord struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	Identifier string       `json:"identifier" gorm:"not null;uniqueIndex;size:128"`
	Type       QuestionType `json:"type" gorm:"not null;index;size:20"`
	Title      string       `json:"title" gorm:"size:200"`

	// Model stored as JSONB so the editor can reload and re-edit it
	Model datatypes.JSON `json:"model" gorm:"type:jsonb"`
	XML   string         `json:"xml" gorm:"type:text"`

	CreatedBy string    `json:"created_by" gorm:"index;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuestionRecord) TableName() string {
	return "questions"
}
