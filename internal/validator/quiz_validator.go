package validator

import (
	"fmt"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
)

// QuizValidator checks quiz document rules that span several fields
type QuizValidator struct{}

func NewQuizValidator() *QuizValidator {
	return &QuizValidator{}
}

// Validate checks that every question's answer is one of its options.
func (v *QuizValidator) Validate(quiz models.Quiz) ValidationErrors {
	var errs ValidationErrors

	for i, q := range quiz {
		if q.Answer != "" && !q.HasOption(q.Answer) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("quiz[%d].answer", i),
				Message: "must match one of the options",
				Value:   q.Answer,
				Rule:    "answer_in_options",
			})
		}
	}

	return errs
}

// ValidateOption reports whether option may be selected for q.
func (v *QuizValidator) ValidateOption(q models.Question, option string) *ValidationError {
	if q.HasOption(option) {
		return nil
	}
	return &ValidationError{
		Field:   "option",
		Message: "must be one of the current question's options",
		Value:   option,
		Rule:    "option_membership",
	}
}
