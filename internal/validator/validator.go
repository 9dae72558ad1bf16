package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/errors"
	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/go-playground/validator/v10"
)

// Use shared validation errors from errors package
type ValidationError = errors.ValidationError
type ValidationErrors = errors.ValidationErrors

// qtiIdentifierRe follows the QTI identifier token rules: starts with a
// letter or underscore, no whitespace.
var qtiIdentifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// Validator combines struct-tag validation with the question-specific
// invariant checks that must hold before a model reaches a generator.
type Validator struct {
	structValidator   *validator.Validate
	questionValidator *QuestionValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		questionValidator: NewQuestionValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// GetQuestionValidator returns the question validator
func (v *Validator) GetQuestionValidator() *QuestionValidator {
	return v.questionValidator
}

// IsValidIdentifier reports whether s is a valid QTI identifier token.
func IsValidIdentifier(s string) bool {
	return qtiIdentifierRe.MatchString(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("qti_identifier", validateQTIIdentifier)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, validType := range models.AllQuestionTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateQTIIdentifier(fl validator.FieldLevel) bool {
	return IsValidIdentifier(fl.Field().String())
}
