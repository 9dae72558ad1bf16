package validator

import (
	"encoding/json"
	"testing"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validChoice() *models.MultipleChoiceQuestion {
	return &models.MultipleChoiceQuestion{
		Identifier: "q1",
		Options: []models.ChoiceOption{
			{Identifier: "A", IsCorrect: true},
			{Identifier: "B"},
		},
		MaxChoices: 1,
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"q1", "A", "_x", "word-1", "a.b", "Item_42"}
	for _, id := range valid {
		assert.True(t, IsValidIdentifier(id), id)
	}

	invalid := []string{"", "1abc", "-x", ".x", "has space", "ab$c"}
	for _, id := range invalid {
		assert.False(t, IsValidIdentifier(id), id)
	}
}

func TestValidateChoice(t *testing.T) {
	v := NewQuestionValidator()

	t.Run("valid question", func(t *testing.T) {
		assert.Empty(t, v.ValidateChoice(validChoice()))
	})

	t.Run("too few options", func(t *testing.T) {
		q := validChoice()
		q.Options = q.Options[:1]
		errs := v.ValidateChoice(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "options", errs[0].Field)
	})

	t.Run("no correct option", func(t *testing.T) {
		q := validChoice()
		q.Options[0].IsCorrect = false
		errs := v.ValidateChoice(q)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Message, "correct")
	})

	t.Run("single choice with multiple correct", func(t *testing.T) {
		q := validChoice()
		q.Options[1].IsCorrect = true
		errs := v.ValidateChoice(q)
		require.Len(t, errs, 1)
		assert.Equal(t, "max_choices", errs[0].Field)
	})

	t.Run("multiple cardinality allows multiple correct", func(t *testing.T) {
		q := validChoice()
		q.Options[1].IsCorrect = true
		q.MaxChoices = 2
		assert.Empty(t, v.ValidateChoice(q))
	})

	t.Run("duplicate option identifiers", func(t *testing.T) {
		q := validChoice()
		q.Options[1].Identifier = "A"
		errs := v.ValidateChoice(q)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Message, "duplicate")
	})

	t.Run("bad question identifier", func(t *testing.T) {
		q := validChoice()
		q.Identifier = "1-starts-with-digit"
		errs := v.ValidateChoice(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "identifier", errs[0].Field)
	})
}

func TestValidateOrder(t *testing.T) {
	v := NewQuestionValidator()

	base := func() *models.OrderQuestion {
		return &models.OrderQuestion{
			Identifier: "ord1",
			Options: []models.OrderOption{
				{Identifier: "a", CorrectOrder: 1},
				{Identifier: "b", CorrectOrder: 2},
				{Identifier: "c", CorrectOrder: 3},
			},
		}
	}

	t.Run("valid permutation", func(t *testing.T) {
		assert.Empty(t, v.ValidateOrder(base()))
	})

	t.Run("rank out of range", func(t *testing.T) {
		q := base()
		q.Options[2].CorrectOrder = 5
		errs := v.ValidateOrder(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "options[2].correct_order", errs[0].Field)
	})

	t.Run("duplicate rank", func(t *testing.T) {
		q := base()
		q.Options[2].CorrectOrder = 1
		errs := v.ValidateOrder(q)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Message, "duplicate")
	})

	t.Run("zero rank", func(t *testing.T) {
		q := base()
		q.Options[0].CorrectOrder = 0
		assert.NotEmpty(t, v.ValidateOrder(q))
	})
}

func TestValidateMatch(t *testing.T) {
	v := NewQuestionValidator()

	base := func() *models.MatchQuestion {
		return &models.MatchQuestion{
			Identifier: "m1",
			Pairs: []models.MatchPair{
				{LeftID: "L1", RightID: "R1"},
				{LeftID: "L2", RightID: "R2"},
			},
		}
	}

	t.Run("valid pairs", func(t *testing.T) {
		assert.Empty(t, v.ValidateMatch(base()))
	})

	t.Run("no pairs", func(t *testing.T) {
		q := base()
		q.Pairs = nil
		errs := v.ValidateMatch(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "pairs", errs[0].Field)
	})

	t.Run("duplicate left identifier", func(t *testing.T) {
		q := base()
		q.Pairs[1].LeftID = "L1"
		errs := v.ValidateMatch(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "pairs[1].left_id", errs[0].Field)
	})

	t.Run("duplicate right identifier", func(t *testing.T) {
		q := base()
		q.Pairs[1].RightID = "R1"
		errs := v.ValidateMatch(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "pairs[1].right_id", errs[0].Field)
	})
}

func TestValidateHottext(t *testing.T) {
	v := NewQuestionValidator()

	base := func() *models.HottextQuestion {
		return &models.HottextQuestion{
			Identifier: "ht1",
			Items: []models.HottextItem{
				{Identifier: "w1", Content: "runs"},
				{Identifier: "w2", Content: "table"},
			},
			CorrectAnswers: []string{"w1"},
		}
	}

	t.Run("valid question", func(t *testing.T) {
		assert.Empty(t, v.ValidateHottext(base()))
	})

	t.Run("correct answer references unknown item", func(t *testing.T) {
		q := base()
		q.CorrectAnswers = []string{"nope"}
		errs := v.ValidateHottext(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "correct_answers", errs[0].Field)
	})

	t.Run("no items", func(t *testing.T) {
		q := base()
		q.Items = nil
		assert.NotEmpty(t, v.ValidateHottext(q))
	})

	t.Run("no correct answers", func(t *testing.T) {
		q := base()
		q.CorrectAnswers = nil
		errs := v.ValidateHottext(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "correct_answers", errs[0].Field)
	})
}

func TestValidateTextEntry(t *testing.T) {
	v := NewQuestionValidator()

	t.Run("valid question", func(t *testing.T) {
		q := &models.TextEntryQuestion{Identifier: "te1", CorrectAnswers: []string{"Paris"}}
		assert.Empty(t, v.ValidateTextEntry(q))
	})

	t.Run("no answers", func(t *testing.T) {
		q := &models.TextEntryQuestion{Identifier: "te1"}
		errs := v.ValidateTextEntry(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "correct_answers", errs[0].Field)
	})

	t.Run("empty answer string", func(t *testing.T) {
		q := &models.TextEntryQuestion{Identifier: "te1", CorrectAnswers: []string{"ok", ""}}
		errs := v.ValidateTextEntry(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "correct_answers[1]", errs[0].Field)
	})

	t.Run("expected length must be positive", func(t *testing.T) {
		q := &models.TextEntryQuestion{
			Identifier:     "te1",
			CorrectAnswers: []string{"ok"},
			ExpectedLength: intPtr(0),
		}
		errs := v.ValidateTextEntry(q)
		require.NotEmpty(t, errs)
		assert.Equal(t, "expected_length", errs[0].Field)
	})
}

func TestValidateContent(t *testing.T) {
	v := NewQuestionValidator()

	t.Run("empty content", func(t *testing.T) {
		assert.Error(t, v.ValidateContent(models.MultipleChoice, nil))
	})

	t.Run("unsupported type", func(t *testing.T) {
		assert.Error(t, v.ValidateContent("essay", json.RawMessage(`{}`)))
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Error(t, v.ValidateContent(models.MultipleChoice, json.RawMessage(`{nope`)))
	})

	t.Run("valid choice payload", func(t *testing.T) {
		payload, err := json.Marshal(validChoice())
		require.NoError(t, err)
		assert.NoError(t, v.ValidateContent(models.MultipleChoice, payload))
	})

	t.Run("invalid payload surfaces typed errors", func(t *testing.T) {
		q := validChoice()
		q.Options = q.Options[:1]
		payload, err := json.Marshal(q)
		require.NoError(t, err)

		verr := v.ValidateContent(models.MultipleChoice, payload)
		require.Error(t, verr)
		var errs ValidationErrors
		require.ErrorAs(t, verr, &errs)
		assert.NotEmpty(t, errs)
	})
}
