package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/SAP-F-2025/quiz-session-service/internal/repositories"
)

const sessionKeyPrefix = "quiz:session:"

var _ repositories.SessionRepository = (*SessionStore)(nil)

// SessionStore keeps sessions in a CacheService. Every save refreshes the TTL,
// so abandoned sessions expire on their own.
type SessionStore struct {
	cache CacheService
	ttl   time.Duration
}

func NewSessionStore(cache CacheService, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: cache, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *SessionStore) Save(ctx context.Context, session *models.Session) error {
	if err := s.cache.Set(ctx, sessionKey(session.ID), session, s.ttl); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := s.cache.Get(ctx, sessionKey(id), &session); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if session.State.Answers == nil {
		session.State.Answers = models.AnswerMap{}
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, sessionKey(id)); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return repositories.ErrNotFound
		}
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// Purge removes every stored session.
func (s *SessionStore) Purge(ctx context.Context) error {
	return s.cache.DeletePattern(ctx, sessionKeyPrefix+"*")
}
