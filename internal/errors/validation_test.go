package errors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("identifier", "is required", "")

	if err.Field != "identifier" {
		t.Errorf("Expected field to be 'identifier', got '%s'", err.Field)
	}

	if err.Message != "is required" {
		t.Errorf("Expected message to be 'is required', got '%s'", err.Message)
	}

	expected := "validation error on field 'identifier': is required"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("options", "must be at least 2", nil))
	expected := "validation failed: options must be at least 2"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("correct_answers", "must be at least 1", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("identifier", "must be a valid QTI identifier", "qti_identifier", "1bad id")

	if err.Rule != "qti_identifier" {
		t.Errorf("Expected rule to be 'qti_identifier', got '%s'", err.Rule)
	}

	if err.Field != "identifier" {
		t.Errorf("Expected field to be 'identifier', got '%s'", err.Field)
	}
}
