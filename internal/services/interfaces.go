package services

import (
	"context"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
)

// ===== SERVICE INTERFACES =====

// SessionService drives quiz-taking sessions. Every mutating call loads the
// stored state, applies one transition and saves the result.
type SessionService interface {
	Start(ctx context.Context, req *StartSessionRequest) (*models.SessionView, error)
	Get(ctx context.Context, id string) (*models.SessionView, error)
	Delete(ctx context.Context, id string) error

	SelectAnswer(ctx context.Context, id string, req *SelectAnswerRequest) (*models.SessionView, error)
	// Advance with requireAnswered refuses to leave an unanswered question
	Advance(ctx context.Context, id string, requireAnswered bool) (*models.SessionView, error)
	Retreat(ctx context.Context, id string) (*models.SessionView, error)
	JumpTo(ctx context.Context, id string, req *JumpRequest) (*models.SessionView, error)
	Finish(ctx context.Context, id string) (*models.SessionView, error)
	Reset(ctx context.Context, id string) (*models.SessionView, error)

	Result(ctx context.Context, id string) (*models.ResultView, error)
}

// ExportService renders completed results into downloadable files.
type ExportService interface {
	ExportResult(ctx context.Context, id string) ([]byte, error)
}

type ServiceManager interface {
	Session() SessionService
	Export() ExportService
}

// ===== REQUEST TYPES =====

// StartSessionRequest starts a session either from a stored quiz or from an
// inline question list.
type StartSessionRequest struct {
	QuizID uint        `json:"quiz_id,omitempty"`
	Title  string      `json:"title,omitempty" validate:"max=300"`
	Quiz   models.Quiz `json:"quiz,omitempty"`
}

type SelectAnswerRequest struct {
	Option string `json:"option" validate:"required"`
}

type JumpRequest struct {
	// Pointer so that an explicit 0 is distinguishable from a missing field
	Index *int `json:"index" validate:"required"`
}

// ===== SERVICE MANAGER =====

type serviceManager struct {
	session SessionService
	export  ExportService
}

func NewServiceManager(session SessionService, export ExportService) ServiceManager {
	return &serviceManager{session: session, export: export}
}

func (m *serviceManager) Session() SessionService { return m.session }
func (m *serviceManager) Export() ExportService   { return m.export }
