package validator

import (
	"reflect"
	"strings"

	apperrors "github.com/SAP-F-2025/quiz-session-service/internal/errors"
	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// Validator combines struct tag validation with quiz document rules
type Validator struct {
	structValidator *validator.Validate
	quizValidator   *QuizValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
		quizValidator:   NewQuizValidator(),
	}
}

// ValidateStruct validates struct tags only. Failures are returned as
// ValidationErrors.
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Validate performs struct validation and, for quiz documents, the document
// rules that tags cannot express.
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		return err
	}

	if doc, ok := s.(*models.QuizDocument); ok {
		if errs := v.quizValidator.Validate(doc.Questions); len(errs) > 0 {
			return errs
		}
	}

	return nil
}

// ValidateQuiz validates a bare question list as a quiz document.
func (v *Validator) ValidateQuiz(quiz models.Quiz) error {
	return v.Validate(&models.QuizDocument{Questions: quiz})
}

// Quiz returns the quiz document validator
func (v *Validator) Quiz() *QuizValidator {
	return v.quizValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	return models.DifficultyLevel(fl.Field().String()).IsValid()
}
