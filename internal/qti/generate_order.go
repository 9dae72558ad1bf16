package qti

import (
	"sort"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// GenerateOrderXML projects an ordering question into a QTI assessment-item
// document. The correct response is the option identifiers sorted by their
// correctOrder rank; the interaction lists options in authored order.
func GenerateOrderXML(q *models.OrderQuestion) string {
	ranked := make([]models.OrderOption, len(q.Options))
	copy(ranked, q.Options)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CorrectOrder < ranked[j].CorrectOrder
	})
	correct := make([]string, 0, len(ranked))
	for _, opt := range ranked {
		correct = append(correct, opt.Identifier)
	}

	var body strings.Builder
	body.WriteString(RenderBlocks(q.Prompt))
	body.WriteString("\n")
	body.WriteString(`<qti-order-interaction response-identifier="RESPONSE"`)
	if q.Shuffle {
		body.WriteString(` shuffle="true"`)
	}
	if q.Orientation != "" {
		body.WriteString(` orientation="` + escapeAttr(q.Orientation) + `"`)
	}
	body.WriteString(">\n")
	for _, opt := range q.Options {
		body.WriteString(`<qti-simple-choice identifier="` + escapeAttr(opt.Identifier) + `">` + "\n")
		body.WriteString(RenderBlocks(opt.Content))
		body.WriteString("\n</qti-simple-choice>\n")
	}
	body.WriteString("</qti-order-interaction>")

	return itemEnvelope{
		Identifier:   q.Identifier,
		Title:        q.Title,
		ResponseDecl: responseDeclaration("ordered", "identifier", correct),
		OutcomeDecls: scoreOutcomeDeclaration() + feedbackOutcomeDeclaration(),
		Body:         body.String(),
		Feedback:     feedbackBlocks(q.CorrectFeedback, q.IncorrectFeedback),
		Processing:   responseProcessing(models.Ordering),
	}.String()
}
