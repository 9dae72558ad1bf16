package qti

import (
	"strconv"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// GenerateTextEntryXML projects a text-entry question into a QTI
// assessment-item document. The correct response is the literal list of
// acceptable answer strings; scoring defers to the match_correct template.
func GenerateTextEntryXML(q *models.TextEntryQuestion) string {
	var body strings.Builder
	body.WriteString(RenderBlocks(q.Prompt))
	body.WriteString("\n<p>\n")
	body.WriteString(`<qti-text-entry-interaction response-identifier="RESPONSE"`)
	if q.ExpectedLength != nil && *q.ExpectedLength > 0 {
		body.WriteString(` expected-length="` + strconv.Itoa(*q.ExpectedLength) + `"`)
	}
	if q.PatternMask != "" {
		body.WriteString(` pattern-mask="` + escapeAttr(q.PatternMask) + `"`)
	}
	body.WriteString("/>\n</p>")

	return itemEnvelope{
		Identifier:   q.Identifier,
		Title:        q.Title,
		ResponseDecl: responseDeclaration("single", "string", q.CorrectAnswers),
		OutcomeDecls: scoreOutcomeDeclaration() + feedbackOutcomeDeclaration(),
		Body:         body.String(),
		Feedback:     feedbackBlocks(q.CorrectFeedback, q.IncorrectFeedback),
		Processing:   responseProcessing(models.TextEntry),
	}.String()
}
