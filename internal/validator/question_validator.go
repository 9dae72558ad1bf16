package validator

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/ayush-verma790/question-gen-sub001/internal/errors"
	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// QuestionValidator is the single shared pre-generation validation step.
// Generators never validate their input; a model that reaches a generator
// has already passed through here.
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateContent validates a raw question payload based on question type,
// returning the typed list of violated invariants (nil when the model is
// valid).
func (v *QuestionValidator) ValidateContent(questionType models.QuestionType, content json.RawMessage) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}

	switch questionType {
	case models.Hottext:
		return v.validateHottextContent(content)
	case models.MultipleChoice:
		return v.validateChoiceContent(content)
	case models.Ordering:
		return v.validateOrderContent(content)
	case models.Matching:
		return v.validateMatchContent(content)
	case models.TextEntry:
		return v.validateTextEntryContent(content)
	default:
		return fmt.Errorf("unsupported question type: %s", questionType)
	}
}

func (v *QuestionValidator) validateHottextContent(content json.RawMessage) error {
	var q models.HottextQuestion
	if err := json.Unmarshal(content, &q); err != nil {
		return fmt.Errorf("invalid hottext content: %w", err)
	}
	return errsOrNil(v.ValidateHottext(&q))
}

func (v *QuestionValidator) validateChoiceContent(content json.RawMessage) error {
	var q models.MultipleChoiceQuestion
	if err := json.Unmarshal(content, &q); err != nil {
		return fmt.Errorf("invalid multiple choice content: %w", err)
	}
	return errsOrNil(v.ValidateChoice(&q))
}

func (v *QuestionValidator) validateOrderContent(content json.RawMessage) error {
	var q models.OrderQuestion
	if err := json.Unmarshal(content, &q); err != nil {
		return fmt.Errorf("invalid ordering content: %w", err)
	}
	return errsOrNil(v.ValidateOrder(&q))
}

func (v *QuestionValidator) validateMatchContent(content json.RawMessage) error {
	var q models.MatchQuestion
	if err := json.Unmarshal(content, &q); err != nil {
		return fmt.Errorf("invalid matching content: %w", err)
	}
	return errsOrNil(v.ValidateMatch(&q))
}

func (v *QuestionValidator) validateTextEntryContent(content json.RawMessage) error {
	var q models.TextEntryQuestion
	if err := json.Unmarshal(content, &q); err != nil {
		return fmt.Errorf("invalid text entry content: %w", err)
	}
	return errsOrNil(v.ValidateTextEntry(&q))
}

// ===== PER-TYPE INVARIANT CHECKS =====

// ValidateHottext checks that correct answers reference existing items.
func (v *QuestionValidator) ValidateHottext(q *models.HottextQuestion) ValidationErrors {
	errs := validateIdentifier(q.Identifier)

	if len(q.Items) == 0 {
		errs = append(errs, *apperrors.NewValidationError("items", "must have at least 1 hottext item", nil))
	}

	itemIDs := make(map[string]bool)
	for i, item := range q.Items {
		if !IsValidIdentifier(item.Identifier) {
			errs = append(errs, *apperrors.NewValidationErrorWithRule(
				fmt.Sprintf("items[%d].identifier", i), "must be a valid QTI identifier", "qti_identifier", item.Identifier))
		}
		if itemIDs[item.Identifier] {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("items[%d].identifier", i), "duplicate hottext item identifier", item.Identifier))
		}
		itemIDs[item.Identifier] = true
	}

	if len(q.CorrectAnswers) == 0 {
		errs = append(errs, *apperrors.NewValidationError("correct_answers", "must have at least 1 correct answer", nil))
	}
	for _, id := range q.CorrectAnswers {
		if !itemIDs[id] {
			errs = append(errs, *apperrors.NewValidationError("correct_answers", "does not match any hottext item", id))
		}
	}

	return errs
}

// ValidateChoice checks option identifiers and the correct-answer subset.
func (v *QuestionValidator) ValidateChoice(q *models.MultipleChoiceQuestion) ValidationErrors {
	errs := validateIdentifier(q.Identifier)

	if len(q.Options) < 2 {
		errs = append(errs, *apperrors.NewValidationError("options", "must have at least 2 options", len(q.Options)))
	}

	correctCount := 0
	optionIDs := make(map[string]bool)
	for i, opt := range q.Options {
		if !IsValidIdentifier(opt.Identifier) {
			errs = append(errs, *apperrors.NewValidationErrorWithRule(
				fmt.Sprintf("options[%d].identifier", i), "must be a valid QTI identifier", "qti_identifier", opt.Identifier))
		}
		if optionIDs[opt.Identifier] {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("options[%d].identifier", i), "duplicate option identifier", opt.Identifier))
		}
		optionIDs[opt.Identifier] = true
		if opt.IsCorrect {
			correctCount++
		}
	}

	if correctCount == 0 {
		errs = append(errs, *apperrors.NewValidationError("options", "must have at least 1 correct option", nil))
	}
	if q.MaxChoices == 1 && correctCount > 1 {
		errs = append(errs, *apperrors.NewValidationError("max_choices", "single-choice question cannot have multiple correct options", correctCount))
	}

	return errs
}

// ValidateOrder checks that correctOrder ranks form a permutation of 1..N.
func (v *QuestionValidator) ValidateOrder(q *models.OrderQuestion) ValidationErrors {
	errs := validateIdentifier(q.Identifier)

	if len(q.Options) < 2 {
		errs = append(errs, *apperrors.NewValidationError("options", "must have at least 2 options", len(q.Options)))
	}

	optionIDs := make(map[string]bool)
	ranks := make(map[int]bool)
	for i, opt := range q.Options {
		if !IsValidIdentifier(opt.Identifier) {
			errs = append(errs, *apperrors.NewValidationErrorWithRule(
				fmt.Sprintf("options[%d].identifier", i), "must be a valid QTI identifier", "qti_identifier", opt.Identifier))
		}
		if optionIDs[opt.Identifier] {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("options[%d].identifier", i), "duplicate option identifier", opt.Identifier))
		}
		optionIDs[opt.Identifier] = true

		if opt.CorrectOrder < 1 || opt.CorrectOrder > len(q.Options) {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("options[%d].correct_order", i), fmt.Sprintf("must be between 1 and %d", len(q.Options)), opt.CorrectOrder))
		} else if ranks[opt.CorrectOrder] {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("options[%d].correct_order", i), "duplicate order rank", opt.CorrectOrder))
		}
		ranks[opt.CorrectOrder] = true
	}

	return errs
}

// ValidateMatch checks pair identifier uniqueness within each side.
func (v *QuestionValidator) ValidateMatch(q *models.MatchQuestion) ValidationErrors {
	errs := validateIdentifier(q.Identifier)

	if len(q.Pairs) == 0 {
		errs = append(errs, *apperrors.NewValidationError("pairs", "must have at least 1 pair", nil))
	}

	leftIDs := make(map[string]bool)
	rightIDs := make(map[string]bool)
	for i, p := range q.Pairs {
		if !IsValidIdentifier(p.LeftID) || !IsValidIdentifier(p.RightID) {
			errs = append(errs, *apperrors.NewValidationErrorWithRule(
				fmt.Sprintf("pairs[%d]", i), "pair identifiers must be valid QTI identifiers", "qti_identifier", p.LeftID+" "+p.RightID))
		}
		if leftIDs[p.LeftID] {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("pairs[%d].left_id", i), "duplicate left identifier", p.LeftID))
		}
		if rightIDs[p.RightID] {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("pairs[%d].right_id", i), "duplicate right identifier", p.RightID))
		}
		leftIDs[p.LeftID] = true
		rightIDs[p.RightID] = true
	}

	return errs
}

// ValidateTextEntry checks that at least one non-empty answer exists.
func (v *QuestionValidator) ValidateTextEntry(q *models.TextEntryQuestion) ValidationErrors {
	errs := validateIdentifier(q.Identifier)

	if len(q.CorrectAnswers) == 0 {
		errs = append(errs, *apperrors.NewValidationError("correct_answers", "must have at least 1 accepted answer", nil))
	}
	for i, answer := range q.CorrectAnswers {
		if answer == "" {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("correct_answers[%d]", i), "accepted answer cannot be empty", nil))
		}
	}
	if q.ExpectedLength != nil && *q.ExpectedLength < 1 {
		errs = append(errs, *apperrors.NewValidationError("expected_length", "must be at least 1", *q.ExpectedLength))
	}

	return errs
}

func validateIdentifier(identifier string) ValidationErrors {
	var errs ValidationErrors
	if identifier == "" {
		errs = append(errs, *apperrors.NewValidationError("identifier", "is required", nil))
	} else if !IsValidIdentifier(identifier) {
		errs = append(errs, *apperrors.NewValidationErrorWithRule(
			"identifier", "must be a valid QTI identifier", "qti_identifier", identifier))
	}
	return errs
}

func errsOrNil(errs ValidationErrors) error {
	if len(errs) > 0 {
		return errs
	}
	return nil
}
