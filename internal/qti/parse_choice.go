package qti

import (
	"errors"
	"strconv"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

var errNoChoiceInteraction = errors.New("qti: qti-choice-interaction not found")

// ParseChoiceXML reconstructs a multiple-choice question from a QTI 3.0
// document. Unlike order and match, every declared choice becomes an option;
// the correct-response values only flip the isCorrect flags.
func ParseChoiceXML(doc string) (*models.MultipleChoiceQuestion, error) {
	item, err := parseItemRoot(doc)
	if err != nil {
		return nil, err
	}

	interaction := item.find("qti-choice-interaction")
	if interaction == nil {
		return nil, errNoChoiceInteraction
	}

	maxChoices := 1
	if v, err := strconv.Atoi(interaction.attr("max-choices")); err == nil && v > 0 {
		maxChoices = v
	}

	q := &models.MultipleChoiceQuestion{
		Identifier:  itemIdentifier(item, "choice"),
		Title:       itemTitle(item),
		Prompt:      promptBlocks(item, "qti-choice-interaction"),
		MaxChoices:  maxChoices,
		Shuffle:     interaction.attr("shuffle") == "true",
		Orientation: interaction.attr("orientation"),
	}

	correct := make(map[string]bool)
	for _, value := range correctValues(item) {
		correct[value] = true
	}

	for _, node := range interaction.findAll("qti-simple-choice") {
		id := node.attr("identifier")
		q.Options = append(q.Options, models.ChoiceOption{
			Identifier: id,
			Content:    []models.ContentBlock{blockFromChoice(node)},
			IsCorrect:  correct[id],
		})
	}

	q.CorrectFeedback, q.IncorrectFeedback = feedbackBlocksFrom(item)
	return q, nil
}
