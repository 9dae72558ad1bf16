package services

import (
	"errors"

	apperrors "github.com/ayush-verma790/question-gen-sub001/internal/errors"
)

// Re-exported so handlers can errors.As against the service package.
type ValidationErrors = apperrors.ValidationErrors
type ValidationError = apperrors.ValidationError

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Question specific errors
	ErrQuestionNotFound       = errors.New("question not found")
	ErrQuestionInvalidType    = errors.New("invalid question type")
	ErrQuestionInvalidContent = errors.New("invalid question content for type")

	// Parse specific errors
	ErrInvalidXML            = errors.New("invalid QTI XML")
	ErrUnsupportedParseType  = errors.New("no parser for this question type")
	ErrUnsupportedImportType = errors.New("unsupported import file format")

	// Export specific errors
	ErrEmptyPackage = errors.New("package export needs at least one question")
)
