package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/quiz-session-service/internal/events"
	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/SAP-F-2025/quiz-session-service/internal/quiz"
	"github.com/SAP-F-2025/quiz-session-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-session-service/internal/validator"
	"github.com/SAP-F-2025/quiz-session-service/pkg/monitoring"
	"github.com/google/uuid"
)

type SessionServiceConfig struct {
	// StrictOptions rejects answers that are not one of the current question's options
	StrictOptions bool
}

type sessionService struct {
	sessions  repositories.SessionRepository
	quizzes   repositories.QuizRepository
	validator *validator.Validator
	publisher events.EventPublisher
	logger    *slog.Logger
	opLogger  *ServiceLogger
	config    SessionServiceConfig
	now       func() time.Time

	// a load-transition-save cycle must not interleave for one session
	locks [sessionLockShards]sync.Mutex
}

const sessionLockShards = 256

// NewSessionService wires the session workflow. quizzes may be nil, in which
// case only inline quizzes can be started.
func NewSessionService(
	sessions repositories.SessionRepository,
	quizzes repositories.QuizRepository,
	validator *validator.Validator,
	publisher events.EventPublisher,
	logger *slog.Logger,
	config SessionServiceConfig,
) SessionService {
	return &sessionService{
		sessions:  sessions,
		quizzes:   quizzes,
		validator: validator,
		publisher: publisher,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "quiz-session-service", Component: "session"}),
		config:    config,
		now:       time.Now,
	}
}

// ===== LIFECYCLE =====

func (s *sessionService) Start(ctx context.Context, req *StartSessionRequest) (view *models.SessionView, err error) {
	var sessionID string
	op := s.opLogger.WithOperation(ctx, "start_session")
	defer func() { op.LogResult(sessionID, err) }()

	if req == nil {
		return nil, ErrQuizSourceNeeded
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	doc, err := s.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(doc); err != nil {
		return nil, err
	}

	state, err := quiz.NewState(doc.Questions)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		QuizID:    doc.ID,
		Title:     doc.Title,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sessionID = session.ID

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	monitoring.RecordSessionStarted()
	s.publish(ctx, events.NewSessionStartedEvent(session))

	return s.view(session), nil
}

func (s *sessionService) resolveDocument(ctx context.Context, req *StartSessionRequest) (*models.QuizDocument, error) {
	if len(req.Quiz) > 0 {
		return &models.QuizDocument{Title: req.Title, Questions: req.Quiz}, nil
	}
	if req.QuizID == 0 {
		return nil, ErrQuizSourceNeeded
	}
	if s.quizzes == nil {
		return nil, fmt.Errorf("%w: stored quizzes are not available", ErrQuizNotFound)
	}

	doc, err := s.quizzes.GetByID(ctx, req.QuizID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if req.Title != "" {
		doc.Title = req.Title
	}
	return doc, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*models.SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	op := s.opLogger.WithOperation(ctx, "delete_session")
	defer func() { op.LogResult(id, err) }()

	unlock := s.lock(id)
	defer unlock()

	if err := s.sessions.Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ===== TRANSITIONS =====

func (s *sessionService) SelectAnswer(ctx context.Context, id string, req *SelectAnswerRequest) (view *models.SessionView, err error) {
	op := s.opLogger.WithOperation(ctx, "select_answer")
	defer func() { op.LogResult(id, err) }()

	if req == nil {
		return nil, ErrValidationFailed
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	session, err := s.apply(ctx, id, func(core *quiz.Session) error {
		if s.config.StrictOptions && !core.Completed() {
			if verr := s.validator.Quiz().ValidateOption(core.CurrentQuestion(), req.Option); verr != nil {
				return NewBusinessRuleError(verr.Rule, verr.Message, map[string]interface{}{
					"option":         req.Option,
					"question_index": core.State().CurrentIndex,
				})
			}
		}
		return core.SelectAnswer(req.Option)
	})
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

func (s *sessionService) Advance(ctx context.Context, id string, requireAnswered bool) (*models.SessionView, error) {
	return s.transition(ctx, "advance", id, func(core *quiz.Session) error {
		if requireAnswered && !core.Completed() && !core.IsCurrentAnswered() {
			return NewBusinessRuleError(RuleAnswerRequired, "Select an answer before moving on", map[string]interface{}{
				"current_index": core.State().CurrentIndex,
			})
		}
		return core.Advance()
	})
}

func (s *sessionService) Retreat(ctx context.Context, id string) (*models.SessionView, error) {
	return s.transition(ctx, "retreat", id, (*quiz.Session).Retreat)
}

func (s *sessionService) Finish(ctx context.Context, id string) (*models.SessionView, error) {
	return s.transition(ctx, "finish", id, (*quiz.Session).Finish)
}

func (s *sessionService) JumpTo(ctx context.Context, id string, req *JumpRequest) (*models.SessionView, error) {
	if req == nil || req.Index == nil {
		return nil, NewValidationError("index", "is required", nil)
	}
	index := *req.Index
	return s.transition(ctx, "jump_to", id, func(core *quiz.Session) error {
		return core.JumpTo(index)
	})
}

func (s *sessionService) Reset(ctx context.Context, id string) (view *models.SessionView, err error) {
	op := s.opLogger.WithOperation(ctx, "reset")
	defer func() { op.LogResult(id, err) }()

	var wasCompleted bool
	session, err := s.apply(ctx, id, func(core *quiz.Session) error {
		wasCompleted = core.Completed()
		core.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewSessionResetEvent(session, wasCompleted))
	return s.view(session), nil
}

func (s *sessionService) transition(ctx context.Context, operation, id string, fn func(*quiz.Session) error) (view *models.SessionView, err error) {
	op := s.opLogger.WithOperation(ctx, operation)
	defer func() { op.LogResult(id, err) }()

	session, err := s.apply(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// apply runs one transition against the stored state and saves the outcome.
// Nothing is written when fn fails.
func (s *sessionService) apply(ctx context.Context, id string, fn func(*quiz.Session) error) (*models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	core, err := quiz.Restore(session.State)
	if err != nil {
		return nil, fmt.Errorf("%w: stored session %s is invalid: %v", ErrInternalError, id, err)
	}
	wasCompleted := core.Completed()

	if err := fn(core); err != nil {
		return nil, err
	}

	session.State = core.State()
	session.UpdatedAt = s.now()

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if !wasCompleted && core.Completed() {
		s.onCompleted(ctx, session)
	}

	return session, nil
}

func (s *sessionService) onCompleted(ctx context.Context, session *models.Session) {
	result := session.State.Result
	if result == nil {
		return
	}

	s.logger.Info("Quiz session completed",
		"session_id", session.ID,
		"quiz_id", session.QuizID,
		"correct", result.Score.CorrectCount,
		"total", result.Score.Total,
		"percentage", result.Score.Percentage,
		"tier", result.Tier)

	monitoring.RecordSessionCompleted(string(result.Tier), result.Score.Percentage)
	s.publish(ctx, events.NewSessionCompletedEvent(session))
}

// ===== RESULTS =====

func (s *sessionService) Result(ctx context.Context, id string) (*models.ResultView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	result := session.State.Result
	if !session.State.Completed || result == nil {
		return nil, ErrResultNotReady
	}

	return &models.ResultView{
		SessionID: session.ID,
		Title:     session.Title,
		Score:     result.Score,
		Breakdown: result.Breakdown,
		Tier:      result.Tier,
		TierStyle: result.Tier.Style(),
	}, nil
}

// ===== HELPERS =====

func (s *sessionService) load(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// lockFor picks the session's mutex from a fixed pool. Sessions sharing a
// shard serialize against each other.
func (s *sessionService) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%sessionLockShards]
}

func (s *sessionService) lock(id string) func() {
	mu := s.lockFor(id)
	mu.Lock()
	return mu.Unlock
}

// publish logs failures instead of returning them.
func (s *sessionService) publish(ctx context.Context, event *events.QuizEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishQuizEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish session event",
			"event_type", event.Type,
			"event_id", event.ID,
			"error", err)
	}
}

func (s *sessionService) view(session *models.Session) *models.SessionView {
	v := quiz.View(session.State)
	v.SessionID = session.ID
	v.QuizID = session.QuizID
	v.Title = session.Title
	return &v
}
