package qti

import (
	"strings"
	"testing"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textBlock(content string) models.ContentBlock {
	return models.ContentBlock{ID: "p1", Type: models.BlockText, Content: content}
}

func TestGenerateChoiceXML_SingleCardinality(t *testing.T) {
	q := &models.MultipleChoiceQuestion{
		Identifier: "q1",
		Title:      "Capital cities",
		Prompt:     []models.ContentBlock{textBlock("Pick the capital of France.")},
		Options: []models.ChoiceOption{
			{Identifier: "A", Content: []models.ContentBlock{textBlock("Paris")}, IsCorrect: true},
			{Identifier: "B", Content: []models.ContentBlock{textBlock("Lyon")}},
		},
		MaxChoices: 1,
	}

	xml := GenerateChoiceXML(q)

	assert.Contains(t, xml, `<qti-assessment-item xmlns="http://www.imsglobal.org/xsd/imsqtiasi_v3p0"`)
	assert.Contains(t, xml, `identifier="q1"`)
	assert.Contains(t, xml, `title="Capital cities"`)
	assert.Contains(t, xml, `cardinality="single" base-type="identifier"`)
	assert.Contains(t, xml, "<qti-value>A</qti-value>")
	assert.NotContains(t, xml, "<qti-value>B</qti-value>")
	assert.Contains(t, xml, `max-choices="1"`)

	// Options appear in authored order.
	posA := strings.Index(xml, `<qti-simple-choice identifier="A">`)
	posB := strings.Index(xml, `<qti-simple-choice identifier="B">`)
	require.GreaterOrEqual(t, posA, 0)
	require.GreaterOrEqual(t, posB, 0)
	assert.Less(t, posA, posB)

	// Choice inlines its response processing rather than using a template.
	assert.Contains(t, xml, "<qti-response-condition>")
	assert.Contains(t, xml, `<qti-set-outcome-value identifier="SCORE">`)
	assert.NotContains(t, xml, "rptemplates/match_correct.xml")
}

func TestGenerateChoiceXML_MultipleCardinality(t *testing.T) {
	q := &models.MultipleChoiceQuestion{
		Identifier: "q2",
		Title:      "Pick two",
		Options: []models.ChoiceOption{
			{Identifier: "A", IsCorrect: true},
			{Identifier: "B", IsCorrect: true},
			{Identifier: "C"},
		},
		MaxChoices: 2,
		Shuffle:    true,
	}

	xml := GenerateChoiceXML(q)

	assert.Contains(t, xml, `cardinality="multiple"`)
	assert.Contains(t, xml, `shuffle="true"`)
	assert.Contains(t, xml, `max-choices="2"`)
	assert.Contains(t, xml, "<qti-value>A</qti-value>")
	assert.Contains(t, xml, "<qti-value>B</qti-value>")
	assert.NotContains(t, xml, "<qti-value>C</qti-value>")
}

func TestGenerateChoiceXML_OptionalAttributesOmitted(t *testing.T) {
	q := &models.MultipleChoiceQuestion{
		Identifier: "q3",
		Options: []models.ChoiceOption{
			{Identifier: "A", IsCorrect: true},
			{Identifier: "B"},
		},
	}

	xml := GenerateChoiceXML(q)

	assert.NotContains(t, xml, "shuffle=")
	assert.NotContains(t, xml, "orientation=")
	assert.NotContains(t, xml, "max-choices=")
}

func TestGenerateChoiceXML_InlineOptionFeedback(t *testing.T) {
	q := &models.MultipleChoiceQuestion{
		Identifier: "q4",
		Options: []models.ChoiceOption{
			{
				Identifier: "A",
				IsCorrect:  true,
				Feedback:   []models.ContentBlock{textBlock("Correct!")},
			},
			{Identifier: "B"},
		},
		MaxChoices: 1,
	}

	xml := GenerateChoiceXML(q)
	assert.Contains(t, xml, `<qti-feedback-inline outcome-identifier="FEEDBACK" identifier="A_FEEDBACK" show-hide="show">`)
}

func TestGenerateOrderXML(t *testing.T) {
	q := &models.OrderQuestion{
		Identifier: "ord1",
		Title:      "Chronology",
		Options: []models.OrderOption{
			{Identifier: "s2", Content: []models.ContentBlock{textBlock("Second")}, CorrectOrder: 2},
			{Identifier: "s1", Content: []models.ContentBlock{textBlock("First")}, CorrectOrder: 1},
			{Identifier: "s3", Content: []models.ContentBlock{textBlock("Third")}, CorrectOrder: 3},
		},
	}

	xml := GenerateOrderXML(q)

	assert.Contains(t, xml, `cardinality="ordered" base-type="identifier"`)

	// Correct response follows the rank, not the authored order.
	correctStart := strings.Index(xml, "<qti-correct-response>")
	correctEnd := strings.Index(xml, "</qti-correct-response>")
	require.Greater(t, correctEnd, correctStart)
	correct := xml[correctStart:correctEnd]
	assert.Less(t, strings.Index(correct, "<qti-value>s1</qti-value>"), strings.Index(correct, "<qti-value>s2</qti-value>"))
	assert.Less(t, strings.Index(correct, "<qti-value>s2</qti-value>"), strings.Index(correct, "<qti-value>s3</qti-value>"))

	// Interaction keeps the authored order.
	body := xml[correctEnd:]
	assert.Less(t, strings.Index(body, `identifier="s2"`), strings.Index(body, `identifier="s1"`))

	// Ordering defers scoring to the standard template.
	assert.Contains(t, xml, `template="https://purl.imsglobal.org/spec/qti/v3p0/rptemplates/match_correct.xml"`)
	assert.NotContains(t, xml, "<qti-response-condition>")
}

func TestGenerateMatchXML(t *testing.T) {
	q := &models.MatchQuestion{
		Identifier: "m1",
		Title:      "Countries and capitals",
		Pairs: []models.MatchPair{
			{LeftID: "L1", Left: []models.ContentBlock{textBlock("France")}, RightID: "R1", Right: []models.ContentBlock{textBlock("Paris")}},
			{LeftID: "L2", Left: []models.ContentBlock{textBlock("Spain")}, RightID: "R2", Right: []models.ContentBlock{textBlock("Madrid")}},
		},
		MaxAssociations: 2,
	}

	xml := GenerateMatchXML(q)

	assert.Contains(t, xml, `cardinality="multiple" base-type="directedPair"`)
	assert.Contains(t, xml, "<qti-value>L1 R1</qti-value>")
	assert.Contains(t, xml, "<qti-value>L2 R2</qti-value>")
	assert.Contains(t, xml, `max-associations="2"`)
	assert.Contains(t, xml, `<qti-simple-associable-choice identifier="L1" match-max="1">`)
	assert.Contains(t, xml, `<qti-simple-associable-choice identifier="R2" match-max="1">`)
	assert.Equal(t, 2, strings.Count(xml, "<qti-simple-match-set>"))
	assert.Contains(t, xml, "rptemplates/match_correct.xml")
}

func TestGenerateTextEntryXML(t *testing.T) {
	length := 10
	q := &models.TextEntryQuestion{
		Identifier:     "te1",
		Title:          "Fill in",
		Prompt:         []models.ContentBlock{textBlock("The capital of France is:")},
		CorrectAnswers: []string{"Paris", "paris"},
		ExpectedLength: &length,
		PatternMask:    "[A-Za-z]+",
	}

	xml := GenerateTextEntryXML(q)

	assert.Contains(t, xml, `cardinality="single" base-type="string"`)
	assert.Contains(t, xml, "<qti-value>Paris</qti-value>")
	assert.Contains(t, xml, "<qti-value>paris</qti-value>")
	assert.Contains(t, xml, `expected-length="10"`)
	assert.Contains(t, xml, `pattern-mask="[A-Za-z]+"`)
	assert.Contains(t, xml, "rptemplates/match_correct.xml")
}

func TestGenerateTextEntryXML_OptionalAttributesOmitted(t *testing.T) {
	q := &models.TextEntryQuestion{
		Identifier:     "te2",
		CorrectAnswers: []string{"42"},
	}

	xml := GenerateTextEntryXML(q)
	assert.NotContains(t, xml, "expected-length=")
	assert.NotContains(t, xml, "pattern-mask=")
}

func TestGenerateHottextXML(t *testing.T) {
	q := &models.HottextQuestion{
		Identifier: "ht1",
		Title:      "Find the verbs",
		Items: []models.HottextItem{
			{Identifier: "w1", Type: models.BlockText, Content: "runs"},
			{Identifier: "w2", Type: models.BlockText, Content: "table", Styles: map[string]string{"fontWeight": "bold"}},
		},
		CorrectAnswers:  []string{"w1"},
		MaxChoices:      1,
		ContainerStyles: map[string]string{"padding": "8px"},
		CustomCSS:       ".hot { color: red; }",
	}

	xml := GenerateHottextXML(q)

	assert.Contains(t, xml, `cardinality="multiple" base-type="identifier"`)
	assert.Contains(t, xml, "<qti-value>w1</qti-value>")
	assert.Contains(t, xml, `<qti-hottext identifier="w1">runs</qti-hottext>`)
	assert.Contains(t, xml, `<qti-hottext identifier="w2" style="font-weight: bold">table</qti-hottext>`)
	assert.Contains(t, xml, `<div style="padding: 8px">`)
	assert.Contains(t, xml, ".hot { color: red; }")

	// Hottext carries no SCORE outcome, only FEEDBACK routing.
	assert.NotContains(t, xml, `identifier="SCORE"`)
	assert.Contains(t, xml, `<qti-outcome-declaration identifier="FEEDBACK"`)
	assert.Contains(t, xml, "<qti-response-condition>")
	assert.NotContains(t, xml, "rptemplates/match_correct.xml")
}

func TestGenerateHottextXML_ImageItem(t *testing.T) {
	q := &models.HottextQuestion{
		Identifier: "ht2",
		Items: []models.HottextItem{
			{Identifier: "i1", Type: models.BlockImage, Content: "pic.png"},
		},
		CorrectAnswers: []string{"i1"},
	}

	xml := GenerateHottextXML(q)
	assert.Contains(t, xml, `<qti-hottext identifier="i1"><img src="pic.png" alt="Image"/></qti-hottext>`)
}

func TestGenerate_FeedbackBlocksAlwaysPresent(t *testing.T) {
	q := &models.MultipleChoiceQuestion{
		Identifier: "q5",
		Options: []models.ChoiceOption{
			{Identifier: "A", IsCorrect: true},
			{Identifier: "B"},
		},
		CorrectFeedback: []models.ContentBlock{textBlock("Well done")},
	}

	xml := GenerateChoiceXML(q)
	assert.Contains(t, xml, `identifier="CORRECT" show-hide="show"`)
	assert.Contains(t, xml, `identifier="INCORRECT" show-hide="show"`)
	assert.Contains(t, xml, "Well done")
}

func TestGenerate_EscapesTitlesAndValues(t *testing.T) {
	q := &models.TextEntryQuestion{
		Identifier:     "esc1",
		Title:          `Solve "x < y"`,
		CorrectAnswers: []string{"a < b & c"},
	}

	xml := GenerateTextEntryXML(q)
	assert.Contains(t, xml, `title="Solve &quot;x &lt; y&quot;"`)
	assert.Contains(t, xml, "<qti-value>a &lt; b &amp; c</qti-value>")
}
