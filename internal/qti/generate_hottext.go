package qti

import (
	"strconv"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// GenerateHottextXML projects a hottext question into a QTI assessment-item
// document. Hottext keeps a FEEDBACK-only outcome model (no SCORE), matching
// the behavior the editor has always produced for this type.
func GenerateHottextXML(q *models.HottextQuestion) string {
	var body strings.Builder
	body.WriteString(RenderBlocks(q.Prompt))
	body.WriteString("\n")
	body.WriteString(`<qti-hottext-interaction response-identifier="RESPONSE"`)
	if q.MaxChoices > 0 {
		body.WriteString(` max-choices="` + strconv.Itoa(q.MaxChoices) + `"`)
	}
	body.WriteString(">\n")
	body.WriteString("<div" + styleAttr(q.ContainerStyles) + ">\n")
	if len(q.Body) > 0 {
		body.WriteString(RenderBlocks(q.Body))
		body.WriteString("\n")
	}
	body.WriteString("<p>")
	for i, item := range q.Items {
		if i > 0 {
			body.WriteString(" ")
		}
		body.WriteString(hottextItem(item))
	}
	body.WriteString("</p>\n</div>\n")
	body.WriteString("</qti-hottext-interaction>")

	return itemEnvelope{
		Identifier:   q.Identifier,
		Title:        q.Title,
		ResponseDecl: responseDeclaration("multiple", "identifier", q.CorrectAnswers),
		OutcomeDecls: feedbackOutcomeDeclaration(),
		Stylesheet:   q.CustomCSS,
		Body:         body.String(),
		Feedback:     feedbackBlocks(q.CorrectFeedback, q.IncorrectFeedback),
		Processing:   responseProcessing(models.Hottext),
	}.String()
}

func hottextItem(item models.HottextItem) string {
	var inner string
	if item.Type == models.BlockImage {
		inner = `<img src="` + escapeAttr(item.Content) + `" alt="` + defaultImageAlt + `"/>`
	} else {
		// text and html item content is markup by contract
		inner = item.Content
	}
	return `<qti-hottext identifier="` + escapeAttr(item.Identifier) + `"` + styleAttr(item.Styles) + ">" + inner + "</qti-hottext>"
}
