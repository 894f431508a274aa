package events

import (
	"time"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/google/uuid"
)

// EventType represents the kinds of quiz session events
type EventType string

const (
	EventSessionStarted   EventType = "quiz.session.started"
	EventSessionCompleted EventType = "quiz.session.completed"
	EventSessionReset     EventType = "quiz.session.reset"
)

const (
	eventSource  = "quiz-session-service"
	eventVersion = "1.0"
)

// QuizEvent is the envelope for every published session event
type QuizEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type SessionStartedEvent struct {
	SessionID     string `json:"session_id"`
	QuizID        uint   `json:"quiz_id,omitempty"`
	Title         string `json:"title,omitempty"`
	QuestionCount int    `json:"question_count"`
}

// SessionCompletedEvent carries the final score to downstream consumers.
type SessionCompletedEvent struct {
	SessionID     string              `json:"session_id"`
	QuizID        uint                `json:"quiz_id,omitempty"`
	Title         string              `json:"title,omitempty"`
	Score         models.ScoreSummary `json:"score"`
	Tier          models.FeedbackTier `json:"tier"`
	AnsweredCount int                 `json:"answered_count"`
	CompletedAt   time.Time           `json:"completed_at"`
}

type SessionResetEvent struct {
	SessionID    string `json:"session_id"`
	QuizID       uint   `json:"quiz_id,omitempty"`
	WasCompleted bool   `json:"was_completed"`
}

func newEvent(eventType EventType, data interface{}) *QuizEvent {
	return &QuizEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewSessionStartedEvent(session *models.Session) *QuizEvent {
	return newEvent(EventSessionStarted, SessionStartedEvent{
		SessionID:     session.ID,
		QuizID:        session.QuizID,
		Title:         session.Title,
		QuestionCount: session.State.Quiz.Len(),
	})
}

// NewSessionCompletedEvent builds the completion event. The session state
// must carry a result.
func NewSessionCompletedEvent(session *models.Session) *QuizEvent {
	data := SessionCompletedEvent{
		SessionID:     session.ID,
		QuizID:        session.QuizID,
		Title:         session.Title,
		AnsweredCount: len(session.State.Answers),
		CompletedAt:   session.UpdatedAt,
	}
	if r := session.State.Result; r != nil {
		data.Score = r.Score
		data.Tier = r.Tier
	}
	return newEvent(EventSessionCompleted, data)
}

func NewSessionResetEvent(session *models.Session, wasCompleted bool) *QuizEvent {
	return newEvent(EventSessionReset, SessionResetEvent{
		SessionID:    session.ID,
		QuizID:       session.QuizID,
		WasCompleted: wasCompleted,
	})
}
