package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err means the record is missing, including
// gorm's own sentinel.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// QuizRepository reads quiz documents produced by the quiz generator.
type QuizRepository interface {
	GetByID(ctx context.Context, id uint) (*models.QuizDocument, error)
}

// SessionRepository persists in-flight quiz sessions.
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
