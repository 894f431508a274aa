package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// QuizRecord mirrors the quiz_records table owned by the quiz generator.
// This service only reads it.
type QuizRecord struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	URL           string         `json:"url" gorm:"uniqueIndex"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary" gorm:"type:text"`
	KeyEntities   datatypes.JSON `json:"key_entities"`
	Sections      datatypes.JSON `json:"sections"`
	Quiz          datatypes.JSON `json:"quiz"`           // []Question
	RelatedTopics datatypes.JSON `json:"related_topics"` // []string
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (QuizRecord) TableName() string {
	return "quiz_records"
}

// ToDocument decodes the JSON columns into a QuizDocument.
func (r *QuizRecord) ToDocument() (*QuizDocument, error) {
	doc := &QuizDocument{
		ID:      r.ID,
		URL:     r.URL,
		Title:   r.Title,
		Summary: r.Summary,
	}

	if len(r.Quiz) > 0 {
		if err := json.Unmarshal(r.Quiz, &doc.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode quiz column: %w", err)
		}
	}

	if len(r.RelatedTopics) > 0 {
		if err := json.Unmarshal(r.RelatedTopics, &doc.RelatedTopics); err != nil {
			return nil, fmt.Errorf("failed to decode related_topics column: %w", err)
		}
	}

	return doc, nil
}
