package qti

import (
	"errors"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

var errNoOrderInteraction = errors.New("qti: qti-order-interaction not found")

// ParseOrderXML reconstructs an ordering question from a QTI 3.0 document.
// Structural failure returns a nil model with an error; callers must treat
// that as "invalid XML", never as an empty question.
//
// Ranks come from the declared correct-response values in document order.
// When the declaration is missing or empty the parser falls back to one
// option per choice element with positional ranks, staying lenient toward
// hand-edited documents.
func ParseOrderXML(doc string) (*models.OrderQuestion, error) {
	item, err := parseItemRoot(doc)
	if err != nil {
		return nil, err
	}

	interaction := item.find("qti-order-interaction")
	if interaction == nil {
		return nil, errNoOrderInteraction
	}

	q := &models.OrderQuestion{
		Identifier:  itemIdentifier(item, "order"),
		Title:       itemTitle(item),
		Prompt:      promptBlocks(item, "qti-order-interaction"),
		Shuffle:     interaction.attr("shuffle") == "true",
		Orientation: interaction.attrOr("orientation", "vertical"),
	}

	choices := interaction.findAll("qti-simple-choice")
	lookup := choiceLookup(choices)

	for _, value := range correctValues(item) {
		node, ok := lookup[value]
		if !ok {
			continue
		}
		q.Options = append(q.Options, models.OrderOption{
			Identifier:   value,
			Content:      []models.ContentBlock{blockFromChoice(node)},
			CorrectOrder: len(q.Options) + 1,
		})
	}

	if len(q.Options) == 0 {
		for i, node := range choices {
			q.Options = append(q.Options, models.OrderOption{
				Identifier:   node.attr("identifier"),
				Content:      []models.ContentBlock{blockFromChoice(node)},
				CorrectOrder: i + 1,
			})
		}
	}

	q.CorrectFeedback, q.IncorrectFeedback = feedbackBlocksFrom(item)
	return q, nil
}
