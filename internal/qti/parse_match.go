package qti

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

var errNoMatchInteraction = errors.New("qti: qti-match-interaction not found")

// ParseMatchXML reconstructs a matching question from a QTI 3.0 document.
// Pairs come from the declared "leftId rightId" correct-response values in
// document order; a missing or empty declaration falls back to pairing the
// two match sets positionally.
func ParseMatchXML(doc string) (*models.MatchQuestion, error) {
	item, err := parseItemRoot(doc)
	if err != nil {
		return nil, err
	}

	interaction := item.find("qti-match-interaction")
	if interaction == nil {
		return nil, errNoMatchInteraction
	}

	maxAssociations := 3
	if v, err := strconv.Atoi(interaction.attr("max-associations")); err == nil && v > 0 {
		maxAssociations = v
	}

	q := &models.MatchQuestion{
		Identifier:      itemIdentifier(item, "match"),
		Title:           itemTitle(item),
		Prompt:          promptBlocks(item, "qti-match-interaction"),
		Shuffle:         interaction.attr("shuffle") == "true",
		MaxAssociations: maxAssociations,
	}

	sets := interaction.findAll("qti-simple-match-set")
	var left, right []*xmlNode
	if len(sets) > 0 {
		left = sets[0].findAll("qti-simple-associable-choice")
	}
	if len(sets) > 1 {
		right = sets[1].findAll("qti-simple-associable-choice")
	}
	leftLookup := choiceLookup(left)
	rightLookup := choiceLookup(right)

	for _, value := range correctValues(item) {
		ids := strings.Fields(value)
		if len(ids) != 2 {
			continue
		}
		leftNode, lok := leftLookup[ids[0]]
		rightNode, rok := rightLookup[ids[1]]
		if !lok || !rok {
			continue
		}
		q.Pairs = append(q.Pairs, models.MatchPair{
			LeftID:  ids[0],
			Left:    []models.ContentBlock{blockFromChoice(leftNode)},
			RightID: ids[1],
			Right:   []models.ContentBlock{blockFromChoice(rightNode)},
		})
	}

	if len(q.Pairs) == 0 {
		for i := 0; i < len(left) && i < len(right); i++ {
			q.Pairs = append(q.Pairs, models.MatchPair{
				LeftID:  left[i].attr("identifier"),
				Left:    []models.ContentBlock{blockFromChoice(left[i])},
				RightID: right[i].attr("identifier"),
				Right:   []models.ContentBlock{blockFromChoice(right[i])},
			})
		}
	}

	q.CorrectFeedback, q.IncorrectFeedback = feedbackBlocksFrom(item)
	return q, nil
}
