package qti

import (
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

const (
	qtiNamespace      = "http://www.imsglobal.org/xsd/imsqtiasi_v3p0"
	xsiNamespace      = "http://www.w3.org/2001/XMLSchema-instance"
	qtiSchemaLocation = "http://www.imsglobal.org/xsd/imsqtiasi_v3p0 https://purl.imsglobal.org/spec/qti/v3p0/schema/xsd/imsqti_asiv3p0_v1p0.xsd"

	// External response-processing template for exact-match scoring.
	matchCorrectTemplate = "https://purl.imsglobal.org/spec/qti/v3p0/rptemplates/match_correct.xml"
)

// processingMode decides whether a generator inlines the response condition
// tree or references the standard match_correct template. Kept as an
// explicit table so the policy is auditable and a new interaction type only
// needs one entry here.
type processingMode int

const (
	processingInline processingMode = iota
	processingTemplate
)

var processingModes = map[models.QuestionType]processingMode{
	models.MultipleChoice: processingInline,
	models.Hottext:        processingInline,
	models.Ordering:       processingTemplate,
	models.Matching:       processingTemplate,
	models.TextEntry:      processingTemplate,
}

// itemEnvelope holds the interaction-specific fragments a generator
// produces; String assembles them into one complete assessment-item
// document. All five generators share this shape.
type itemEnvelope struct {
	Identifier   string
	Title        string
	ResponseDecl string
	OutcomeDecls string
	Stylesheet   string // optional inline <style> payload
	Body         string // prompt + interaction markup
	Feedback     string
	Processing   string
}

func (e itemEnvelope) String() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<qti-assessment-item xmlns="` + qtiNamespace + `"`)
	sb.WriteString(` xmlns:xsi="` + xsiNamespace + `"`)
	sb.WriteString(` xsi:schemaLocation="` + qtiSchemaLocation + `"`)
	sb.WriteString(` identifier="` + escapeAttr(e.Identifier) + `"`)
	sb.WriteString(` title="` + escapeAttr(e.Title) + `"`)
	sb.WriteString(` time-dependent="false">` + "\n")
	sb.WriteString(e.ResponseDecl)
	sb.WriteString(e.OutcomeDecls)
	sb.WriteString("<qti-item-body>\n")
	if e.Stylesheet != "" {
		sb.WriteString("<style>\n" + e.Stylesheet + "\n</style>\n")
	}
	sb.WriteString(e.Body)
	sb.WriteString("\n" + e.Feedback)
	sb.WriteString("</qti-item-body>\n")
	sb.WriteString(e.Processing)
	sb.WriteString("</qti-assessment-item>\n")
	return sb.String()
}

// responseDeclaration emits the RESPONSE declaration with its derived
// correct-response value list. Values are plain text (identifiers, pair
// strings or literal answers) and are escaped as text nodes.
func responseDeclaration(cardinality, baseType string, values []string) string {
	var sb strings.Builder
	sb.WriteString(`<qti-response-declaration identifier="RESPONSE" cardinality="` + cardinality + `" base-type="` + baseType + `">` + "\n")
	if len(values) > 0 {
		sb.WriteString("<qti-correct-response>\n")
		for _, v := range values {
			sb.WriteString("<qti-value>" + escapeText(v) + "</qti-value>\n")
		}
		sb.WriteString("</qti-correct-response>\n")
	}
	sb.WriteString("</qti-response-declaration>\n")
	return sb.String()
}

func scoreOutcomeDeclaration() string {
	return `<qti-outcome-declaration identifier="SCORE" cardinality="single" base-type="float">` + "\n" +
		"<qti-default-value>\n<qti-value>0</qti-value>\n</qti-default-value>\n" +
		"</qti-outcome-declaration>\n"
}

func feedbackOutcomeDeclaration() string {
	return `<qti-outcome-declaration identifier="FEEDBACK" cardinality="single" base-type="identifier"/>` + "\n"
}

// feedbackBlocks emits the CORRECT and INCORRECT feedback wrappers. An
// empty block list still yields the wrapper so feedback wiring stays intact.
func feedbackBlocks(correct, incorrect []models.ContentBlock) string {
	return feedbackBlock("CORRECT", correct) + feedbackBlock("INCORRECT", incorrect)
}

func feedbackBlock(identifier string, blocks []models.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(`<qti-feedback-block outcome-identifier="FEEDBACK" identifier="` + identifier + `" show-hide="show">` + "\n")
	sb.WriteString("<qti-content-body>\n")
	sb.WriteString(RenderBlocks(blocks))
	sb.WriteString("\n</qti-content-body>\n")
	sb.WriteString("</qti-feedback-block>\n")
	return sb.String()
}

// inlineResponseProcessing emits the explicit condition tree used by the
// identifier-match interactions. withScore additionally sets SCORE to the
// maximum on a correct response.
func inlineResponseProcessing(withScore bool) string {
	var sb strings.Builder
	sb.WriteString("<qti-response-processing>\n<qti-response-condition>\n<qti-response-if>\n")
	sb.WriteString("<qti-match>\n")
	sb.WriteString(`<qti-variable identifier="RESPONSE"/>` + "\n")
	sb.WriteString(`<qti-correct identifier="RESPONSE"/>` + "\n")
	sb.WriteString("</qti-match>\n")
	if withScore {
		sb.WriteString(`<qti-set-outcome-value identifier="SCORE">` + "\n")
		sb.WriteString(`<qti-base-value base-type="float">1</qti-base-value>` + "\n")
		sb.WriteString("</qti-set-outcome-value>\n")
	}
	sb.WriteString(`<qti-set-outcome-value identifier="FEEDBACK">` + "\n")
	sb.WriteString(`<qti-base-value base-type="identifier">CORRECT</qti-base-value>` + "\n")
	sb.WriteString("</qti-set-outcome-value>\n")
	sb.WriteString("</qti-response-if>\n<qti-response-else>\n")
	sb.WriteString(`<qti-set-outcome-value identifier="FEEDBACK">` + "\n")
	sb.WriteString(`<qti-base-value base-type="identifier">INCORRECT</qti-base-value>` + "\n")
	sb.WriteString("</qti-set-outcome-value>\n")
	sb.WriteString("</qti-response-else>\n</qti-response-condition>\n</qti-response-processing>\n")
	return sb.String()
}

func templateResponseProcessing() string {
	return `<qti-response-processing template="` + matchCorrectTemplate + `"/>` + "\n"
}

func responseProcessing(qt models.QuestionType) string {
	if processingModes[qt] == processingInline {
		return inlineResponseProcessing(qt != models.Hottext)
	}
	return templateResponseProcessing()
}
