package quiz

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
)

var (
	ErrEmptyQuiz                = errors.New("quiz must contain at least one question")
	ErrInvalidIndex             = errors.New("question index out of range")
	ErrInvalidOperationForState = errors.New("operation not allowed in current session state")
)

// IndexError is returned when a jump targets a question that does not exist.
type IndexError struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("question index %d out of range [0, %d)", e.Index, e.Total)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}

// StateError is returned when an operation is not valid for the session status.
type StateError struct {
	Operation string               `json:"operation"`
	Status    models.SessionStatus `json:"status"`
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: session is %s", e.Operation, e.Status)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidOperationForState
}

func IsInvalidIndex(err error) bool {
	return errors.Is(err, ErrInvalidIndex)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidOperationForState)
}

func IsEmptyQuiz(err error) bool {
	return errors.Is(err, ErrEmptyQuiz)
}
