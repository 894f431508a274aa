package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedSession() *models.Session {
	return &models.Session{
		ID:     "5b1d3c9e-8a43-4c1b-9d3e-2f0c6a7b8e91",
		QuizID: 12,
		Title:  "Alan Turing",
		State: models.SessionState{
			Quiz:      models.Quiz{{Text: "q1"}, {Text: "q2"}},
			Answers:   models.AnswerMap{0: "a"},
			Completed: true,
			Result: &models.QuizResult{
				Score: models.ScoreSummary{CorrectCount: 1, Total: 2, Percentage: 50},
				Tier:  models.TierGood,
			},
		},
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMockEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pub := NewMockEventPublisher(logger)
	ctx := context.Background()

	require.NoError(t, pub.PublishQuizEvent(ctx, NewSessionStartedEvent(completedSession())))
	require.NoError(t, pub.PublishQuizEvent(ctx, NewSessionCompletedEvent(completedSession())))

	published := pub.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, EventSessionStarted, published[0].Type)
	assert.Equal(t, EventSessionCompleted, published[1].Type)

	data, ok := published[1].Data.(SessionCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, 50, data.Score.Percentage)
	assert.Equal(t, models.TierGood, data.Tier)
	assert.Equal(t, 1, data.AnsweredCount)

	pub.ClearEvents()
	assert.Empty(t, pub.GetPublishedEvents())
	assert.NoError(t, pub.Close())
}

func TestMockEventPublisher_KeepsMostRecent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := NewMockEventPublisher(logger)
	pub.limit = 3
	ctx := context.Background()

	var ids []string
	for i := 0; i < 10; i++ {
		event := NewSessionStartedEvent(completedSession())
		ids = append(ids, event.ID)
		require.NoError(t, pub.PublishQuizEvent(ctx, event))
	}

	published := pub.GetPublishedEvents()
	require.Len(t, published, 3)
	for i, event := range published {
		assert.Equal(t, ids[7+i], event.ID)
	}

	assert.Equal(t, mockEventLimit, NewMockEventPublisher(logger).limit)
}

func TestEventEnvelope(t *testing.T) {
	event := NewSessionResetEvent(completedSession(), true)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, eventSource, event.Source)
	assert.Equal(t, eventVersion, event.Version)

	msg, err := toMessage(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, event.ID, msg.UUID)
	assert.Equal(t, string(EventSessionReset), msg.Metadata.Get("event_type"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	assert.Equal(t, "quiz.session.reset", decoded["type"])
	assert.Equal(t, true, decoded["data"].(map[string]interface{})["was_completed"])
}
