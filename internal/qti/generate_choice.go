package qti

import (
	"strconv"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// GenerateChoiceXML projects a multiple-choice question into a complete QTI
// assessment-item document. Pure read-only projection: the model is assumed
// to already satisfy its invariants (the validator runs before generation).
func GenerateChoiceXML(q *models.MultipleChoiceQuestion) string {
	cardinality := "single"
	if q.MaxChoices > 1 {
		cardinality = "multiple"
	}

	correct := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct = append(correct, opt.Identifier)
		}
	}

	var body strings.Builder
	body.WriteString(RenderBlocks(q.Prompt))
	body.WriteString("\n")
	body.WriteString(`<qti-choice-interaction response-identifier="RESPONSE"`)
	if q.Shuffle {
		body.WriteString(` shuffle="true"`)
	}
	if q.MaxChoices > 0 {
		body.WriteString(` max-choices="` + strconv.Itoa(q.MaxChoices) + `"`)
	}
	if q.Orientation != "" {
		body.WriteString(` orientation="` + escapeAttr(q.Orientation) + `"`)
	}
	body.WriteString(">\n")
	for _, opt := range q.Options {
		body.WriteString(`<qti-simple-choice identifier="` + escapeAttr(opt.Identifier) + `">` + "\n")
		body.WriteString(RenderBlocks(opt.Content))
		if len(opt.Feedback) > 0 {
			body.WriteString("\n" + inlineFeedback(opt.Identifier, opt.Feedback))
		}
		body.WriteString("\n</qti-simple-choice>\n")
	}
	body.WriteString("</qti-choice-interaction>")

	return itemEnvelope{
		Identifier:   q.Identifier,
		Title:        q.Title,
		ResponseDecl: responseDeclaration(cardinality, "identifier", correct),
		OutcomeDecls: scoreOutcomeDeclaration() + feedbackOutcomeDeclaration(),
		Body:         body.String(),
		Feedback:     feedbackBlocks(q.CorrectFeedback, q.IncorrectFeedback),
		Processing:   responseProcessing(models.MultipleChoice),
	}.String()
}

// inlineFeedback renders per-option feedback shown alongside the choice.
func inlineFeedback(optionID string, blocks []models.ContentBlock) string {
	return `<qti-feedback-inline outcome-identifier="FEEDBACK" identifier="` + escapeAttr(optionID+"_FEEDBACK") + `" show-hide="show">` +
		RenderBlocks(blocks) +
		"</qti-feedback-inline>"
}
