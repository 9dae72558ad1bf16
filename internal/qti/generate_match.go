package qti

import (
	"strconv"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// GenerateMatchXML projects a matching question into a QTI assessment-item
// document. The correct response is one "leftId rightId" directed pair per
// entry, in pair-list order.
func GenerateMatchXML(q *models.MatchQuestion) string {
	correct := make([]string, 0, len(q.Pairs))
	for _, p := range q.Pairs {
		correct = append(correct, p.LeftID+" "+p.RightID)
	}

	var body strings.Builder
	body.WriteString(RenderBlocks(q.Prompt))
	body.WriteString("\n")
	body.WriteString(`<qti-match-interaction response-identifier="RESPONSE"`)
	if q.Shuffle {
		body.WriteString(` shuffle="true"`)
	}
	if q.MaxAssociations > 0 {
		body.WriteString(` max-associations="` + strconv.Itoa(q.MaxAssociations) + `"`)
	}
	body.WriteString(">\n<qti-simple-match-set>\n")
	for _, p := range q.Pairs {
		body.WriteString(associableChoice(p.LeftID, p.Left))
	}
	body.WriteString("</qti-simple-match-set>\n<qti-simple-match-set>\n")
	for _, p := range q.Pairs {
		body.WriteString(associableChoice(p.RightID, p.Right))
	}
	body.WriteString("</qti-simple-match-set>\n</qti-match-interaction>")

	return itemEnvelope{
		Identifier:   q.Identifier,
		Title:        q.Title,
		ResponseDecl: responseDeclaration("multiple", "directedPair", correct),
		OutcomeDecls: scoreOutcomeDeclaration() + feedbackOutcomeDeclaration(),
		Body:         body.String(),
		Feedback:     feedbackBlocks(q.CorrectFeedback, q.IncorrectFeedback),
		Processing:   responseProcessing(models.Matching),
	}.String()
}

func associableChoice(identifier string, blocks []models.ContentBlock) string {
	return `<qti-simple-associable-choice identifier="` + escapeAttr(identifier) + `" match-max="1">` + "\n" +
		RenderBlocks(blocks) +
		"\n</qti-simple-associable-choice>\n"
}
