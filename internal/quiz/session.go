package quiz

import "github.com/SAP-F-2025/quiz-session-service/internal/models"

// Session is the stateful controller over SessionState. It is owned by a
// single user interaction and is not safe for concurrent use.
type Session struct {
	state models.SessionState
}

// NewSession starts a session on quiz. An empty quiz is rejected.
func NewSession(quiz models.Quiz) (*Session, error) {
	state, err := NewState(quiz)
	if err != nil {
		return nil, err
	}
	return &Session{state: state}, nil
}

// Restore wraps a previously stored state. The current index and every
// answered index must address a question of the quiz.
func Restore(state models.SessionState) (*Session, error) {
	if state.Quiz.Len() == 0 {
		return nil, ErrEmptyQuiz
	}
	if !state.Quiz.InRange(state.CurrentIndex) {
		return nil, &IndexError{Index: state.CurrentIndex, Total: state.Quiz.Len()}
	}
	for index := range state.Answers {
		if !state.Quiz.InRange(index) {
			return nil, &IndexError{Index: index, Total: state.Quiz.Len()}
		}
	}
	if state.Answers == nil {
		state.Answers = models.AnswerMap{}
	}
	return &Session{state: state}, nil
}

// State returns the current state value.
func (s *Session) State() models.SessionState {
	return s.state
}

func (s *Session) apply(next models.SessionState, err error) error {
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Session) SelectAnswer(option string) error {
	return s.apply(SelectAnswer(s.state, option))
}

func (s *Session) Advance() error {
	return s.apply(Advance(s.state))
}

func (s *Session) Retreat() error {
	return s.apply(Retreat(s.state))
}

func (s *Session) JumpTo(index int) error {
	return s.apply(JumpTo(s.state, index))
}

func (s *Session) Finish() error {
	return s.apply(Finish(s.state))
}

func (s *Session) Reset() {
	s.state = Reset(s.state)
}

func (s *Session) CurrentQuestion() models.Question {
	return s.state.Quiz[s.state.CurrentIndex]
}

func (s *Session) IsCurrentAnswered() bool {
	_, ok := s.state.Answers.Get(s.state.CurrentIndex)
	return ok
}

func (s *Session) Completed() bool {
	return s.state.Completed
}

// Result returns the computed result, or nil while the session is in progress.
func (s *Session) Result() *models.QuizResult {
	return s.state.Result
}

func (s *Session) View() models.SessionView {
	return View(s.state)
}
