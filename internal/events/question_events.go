package events

import (
	"time"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// EventType represents the question lifecycle events other services consume
type EventType string

const (
	EventQuestionGenerated EventType = "question.generated"
	EventQuestionImported  EventType = "question.imported"
	EventQuestionDeleted   EventType = "question.deleted"
	EventPackageExported   EventType = "package.exported"
)

// QuestionEvent is the base event structure published to the event bus
type QuestionEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type QuestionGeneratedEvent struct {
	Identifier   string              `json:"identifier"`
	QuestionType models.QuestionType `json:"question_type"`
	Title        string              `json:"title"`
	XMLBytes     int                 `json:"xml_bytes"`
	CreatedBy    string              `json:"created_by,omitempty"`
}

type QuestionImportedEvent struct {
	Identifier   string              `json:"identifier"`
	QuestionType models.QuestionType `json:"question_type"`
	SourceFile   string              `json:"source_file,omitempty"`
}

type PackageExportedEvent struct {
	Identifiers []string `json:"identifiers"`
	SizeBytes   int      `json:"size_bytes"`
}
