package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/SAP-F-2025/quiz-session-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

// GetByID loads a generated quiz and decodes its question list
func (q *QuizPostgreSQL) GetByID(ctx context.Context, id uint) (*models.QuizDocument, error) {
	var record models.QuizRecord
	err := q.db.WithContext(ctx).
		Select("id", "url", "title", "summary", "quiz", "related_topics", "created_at").
		First(&record, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, err)
	}

	doc, err := record.ToDocument()
	if err != nil {
		return nil, fmt.Errorf("quiz %d: %w", id, err)
	}
	return doc, nil
}
