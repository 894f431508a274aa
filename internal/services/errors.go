package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/quiz-session-service/internal/errors"
	"github.com/SAP-F-2025/quiz-session-service/internal/quiz"
	"github.com/SAP-F-2025/quiz-session-service/internal/repositories"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Session specific errors
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrResultNotReady  = errors.New("quiz session is not completed yet")

	// Quiz document errors
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuizSourceNeeded = errors.New("either quiz_id or quiz must be provided")
)

// ===== CUSTOM ERROR TYPES =====

// RuleAnswerRequired is the BusinessRuleError rule for leaving an unanswered question.
const RuleAnswerRequired = "answer_required"

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrQuizNotFound) ||
		repositories.IsNotFoundError(err)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrQuizSourceNeeded) || quiz.IsEmptyQuiz(err) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsInvalidIndex checks if error is a navigation target outside the quiz
func IsInvalidIndex(err error) bool {
	return quiz.IsInvalidIndex(err)
}

// IsConflict checks if error is an operation the session's state does not allow
func IsConflict(err error) bool {
	return errors.Is(err, ErrResultNotReady) ||
		quiz.IsInvalidState(err)
}
