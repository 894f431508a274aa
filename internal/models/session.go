package models

import "time"

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

// AnswerMap maps a 0-based question index to the selected option.
// Indices without an entry are unanswered.
type AnswerMap map[int]string

// Clone returns an independent copy of the map.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Get returns the recorded answer for index and whether one exists.
func (a AnswerMap) Get(index int) (string, bool) {
	v, ok := a[index]
	return v, ok
}

// SessionState is the full state of one quiz-taking attempt. Values are
// treated as immutable: transitions return a new state instead of editing
// the receiver.
type SessionState struct {
	Quiz         Quiz        `json:"quiz"`
	CurrentIndex int         `json:"current_index"`
	Answers      AnswerMap   `json:"answers"`
	Completed    bool        `json:"completed"`
	Result       *QuizResult `json:"result,omitempty"`
}

func (s SessionState) Status() SessionStatus {
	if s.Completed {
		return SessionStatusCompleted
	}
	return SessionStatusInProgress
}

// Session is a stored session: the core state plus host bookkeeping.
type Session struct {
	ID        string       `json:"id"`
	QuizID    uint         `json:"quiz_id,omitempty"`
	Title     string       `json:"title,omitempty"`
	State     SessionState `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// QuestionView is what a renderer needs to present one question.
type QuestionView struct {
	Index           int             `json:"index"`
	Number          int             `json:"number"`
	Text            string          `json:"text"`
	Options         []string        `json:"options"`
	Difficulty      DifficultyLevel `json:"difficulty"`
	DifficultyColor string          `json:"difficulty_color"`
}

// SessionView is the read model returned after every session operation.
type SessionView struct {
	SessionID      string        `json:"session_id,omitempty"`
	QuizID         uint          `json:"quiz_id,omitempty"`
	Title          string        `json:"title,omitempty"`
	Question       QuestionView  `json:"question"`
	CurrentIndex   int           `json:"current_index"`
	Total          int           `json:"total"`
	Answered       bool          `json:"answered"`
	SelectedAnswer *string       `json:"selected_answer,omitempty"`
	AnsweredCount  int           `json:"answered_count"`
	IsLastQuestion bool          `json:"is_last_question"`
	Completed      bool          `json:"completed"`
	Status         SessionStatus `json:"status"`
}
