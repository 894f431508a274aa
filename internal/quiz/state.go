package quiz

import "github.com/SAP-F-2025/quiz-session-service/internal/models"

// Transitions are pure: each takes a state and returns the next one. On error
// the returned state is the input, unchanged.

const (
	OpSelectAnswer = "select answer"
	OpAdvance      = "advance"
	OpRetreat      = "retreat"
	OpFinish       = "finish"
)

// NewState returns the initial state for a quiz.
func NewState(quiz models.Quiz) (models.SessionState, error) {
	if quiz.Len() == 0 {
		return models.SessionState{}, ErrEmptyQuiz
	}
	return models.SessionState{
		Quiz:         quiz,
		CurrentIndex: 0,
		Answers:      models.AnswerMap{},
	}, nil
}

func requireInProgress(s models.SessionState, op string) error {
	if s.Completed {
		return &StateError{Operation: op, Status: s.Status()}
	}
	return nil
}

// SelectAnswer records option for the current question, replacing any
// previous choice. Membership in the option list is not checked here.
func SelectAnswer(s models.SessionState, option string) (models.SessionState, error) {
	if err := requireInProgress(s, OpSelectAnswer); err != nil {
		return s, err
	}
	next := s
	next.Answers = s.Answers.Clone()
	next.Answers[s.CurrentIndex] = option
	return next, nil
}

// Advance moves to the next question. On the last question it is the submit
// action and completes the session.
func Advance(s models.SessionState) (models.SessionState, error) {
	if err := requireInProgress(s, OpAdvance); err != nil {
		return s, err
	}
	if s.CurrentIndex < s.Quiz.Len()-1 {
		next := s
		next.CurrentIndex++
		return next, nil
	}
	return complete(s)
}

// Retreat moves to the previous question; at the first question it is a no-op.
func Retreat(s models.SessionState) (models.SessionState, error) {
	if err := requireInProgress(s, OpRetreat); err != nil {
		return s, err
	}
	next := s
	if next.CurrentIndex > 0 {
		next.CurrentIndex--
	}
	return next, nil
}

// JumpTo moves to index. Allowed after completion so results can be reviewed.
func JumpTo(s models.SessionState, index int) (models.SessionState, error) {
	if !s.Quiz.InRange(index) {
		return s, &IndexError{Index: index, Total: s.Quiz.Len()}
	}
	next := s
	next.CurrentIndex = index
	return next, nil
}

// Finish completes the session from any question.
func Finish(s models.SessionState) (models.SessionState, error) {
	if err := requireInProgress(s, OpFinish); err != nil {
		return s, err
	}
	return complete(s)
}

// Reset discards answers and results and returns to the first question.
func Reset(s models.SessionState) models.SessionState {
	return models.SessionState{
		Quiz:         s.Quiz,
		CurrentIndex: 0,
		Answers:      models.AnswerMap{},
	}
}

func complete(s models.SessionState) (models.SessionState, error) {
	result, err := BuildResult(s.Quiz, s.Answers)
	if err != nil {
		return s, err
	}
	next := s
	next.Completed = true
	next.Result = result
	return next, nil
}

// View projects the state into what a renderer reads for the current question.
func View(s models.SessionState) models.SessionView {
	view := models.SessionView{
		CurrentIndex:   s.CurrentIndex,
		Total:          s.Quiz.Len(),
		AnsweredCount:  len(s.Answers),
		IsLastQuestion: s.CurrentIndex == s.Quiz.Len()-1,
		Completed:      s.Completed,
		Status:         s.Status(),
	}

	if s.Quiz.InRange(s.CurrentIndex) {
		q := s.Quiz[s.CurrentIndex]
		view.Question = models.QuestionView{
			Index:           s.CurrentIndex,
			Number:          s.CurrentIndex + 1,
			Text:            q.Text,
			Options:         q.Options,
			Difficulty:      q.Difficulty,
			DifficultyColor: q.Difficulty.Style().Color,
		}
	}

	if answer, ok := s.Answers.Get(s.CurrentIndex); ok {
		view.Answered = true
		view.SelectedAnswer = &answer
	}

	return view
}
