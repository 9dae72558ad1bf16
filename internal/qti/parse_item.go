package qti

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// Shared helpers for the per-type XML parsers. Only QTI 3.0 dashed tag names
// are recognized here; QTI 2.x camelCase documents are not matched.

const defaultImportTitle = "Imported Question"

var errNotAssessmentItem = errors.New("qti: qti-assessment-item root not found")

// parseItemRoot parses the document and locates the assessment-item element,
// which may be the root itself or nested under a wrapper.
func parseItemRoot(doc string) (*xmlNode, error) {
	root, err := parseXML(doc)
	if err != nil {
		return nil, fmt.Errorf("qti: malformed xml: %w", err)
	}
	item := root.find("qti-assessment-item")
	if item == nil {
		return nil, errNotAssessmentItem
	}
	return item, nil
}

// itemIdentifier reads the identifier attribute, falling back to a freshly
// generated timestamp-based identifier. Parsing never fails on missing
// optional metadata.
func itemIdentifier(item *xmlNode, prefix string) string {
	if id := item.attr("identifier"); id != "" {
		return id
	}
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
}

func itemTitle(item *xmlNode) string {
	return item.attrOr("title", defaultImportTitle)
}

// blockFromChoice turns a parsed choice/pair element into a single content
// block: the style attribute becomes the style map, every other attribute
// except the identifier is copied through, and the inner markup is kept
// verbatim after unwrapping one level of qti-content-body.
func blockFromChoice(node *xmlNode) models.ContentBlock {
	block := models.ContentBlock{
		ID:      node.attr("identifier") + "_content",
		Type:    models.BlockHTML,
		Content: unwrapContentBody(node),
	}
	if style := node.attr("style"); style != "" {
		block.Styles = ParseStyles(style)
	}
	for name, value := range node.Attrs {
		if name == "identifier" || name == "style" {
			continue
		}
		if block.Attributes == nil {
			block.Attributes = make(map[string]string)
		}
		block.Attributes[name] = value
	}
	return block
}

func unwrapContentBody(node *xmlNode) string {
	if len(node.Children) == 1 && node.Children[0].Name == "qti-content-body" && node.trimmedText() == "" {
		return strings.TrimSpace(node.Children[0].Inner)
	}
	return strings.TrimSpace(node.Inner)
}

// correctValues walks the declared correct-response values in document
// order. A missing or empty declaration yields nil, which the per-type
// parsers treat as the signal to fall back to positional assignment.
func correctValues(item *xmlNode) []string {
	decl := item.find("qti-response-declaration")
	if decl == nil {
		return nil
	}
	correct := decl.find("qti-correct-response")
	if correct == nil {
		return nil
	}
	var values []string
	for _, v := range correct.findAll("qti-value") {
		if text := v.trimmedText(); text != "" {
			values = append(values, text)
		}
	}
	return values
}

// promptBlocks extracts the item-body children preceding the interaction
// element as html content blocks, so a re-imported question keeps its
// prompt editable.
func promptBlocks(item *xmlNode, interactionName string) []models.ContentBlock {
	body := item.find("qti-item-body")
	if body == nil {
		return nil
	}
	var blocks []models.ContentBlock
	for i, child := range body.Children {
		if child.Name == interactionName || child.find(interactionName) != nil {
			break
		}
		if child.Name == "qti-feedback-block" || child.Name == "style" {
			continue
		}
		block := models.ContentBlock{
			ID:      fmt.Sprintf("prompt_%d", i+1),
			Type:    models.BlockHTML,
			Content: strings.TrimSpace(child.Inner),
		}
		if style := child.attr("style"); style != "" {
			block.Styles = ParseStyles(style)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// feedbackBlocksFrom locates the CORRECT/INCORRECT identified feedback
// elements. Absent feedback yields an empty list, not an error.
func feedbackBlocksFrom(item *xmlNode) (correct, incorrect []models.ContentBlock) {
	for _, fb := range item.findAll("qti-feedback-block") {
		content := strings.TrimSpace(unwrapContentBody(fb))
		if content == "" {
			continue
		}
		block := models.ContentBlock{
			ID:      strings.ToLower(fb.attr("identifier")) + "_feedback",
			Type:    models.BlockHTML,
			Content: content,
		}
		switch fb.attr("identifier") {
		case "CORRECT":
			correct = append(correct, block)
		case "INCORRECT":
			incorrect = append(incorrect, block)
		}
	}
	return correct, incorrect
}

// choiceLookup builds an identifier -> element index over the interaction's
// choice elements.
func choiceLookup(nodes []*xmlNode) map[string]*xmlNode {
	lookup := make(map[string]*xmlNode, len(nodes))
	for _, n := range nodes {
		if id := n.attr("identifier"); id != "" {
			lookup[id] = n
		}
	}
	return lookup
}
