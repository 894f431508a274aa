package quiz

import (
	"testing"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, q models.Quiz) models.SessionState {
	t.Helper()
	s, err := NewState(q)
	require.NoError(t, err)
	return s
}

func initialState(q models.Quiz) models.SessionState {
	return models.SessionState{Quiz: q, CurrentIndex: 0, Answers: models.AnswerMap{}}
}

func TestNewState(t *testing.T) {
	q := capitalsQuiz()
	assert.Equal(t, initialState(q), mustState(t, q))

	_, err := NewState(models.Quiz{})
	assert.ErrorIs(t, err, ErrEmptyQuiz)
}

func TestSelectAnswer(t *testing.T) {
	s := mustState(t, capitalsQuiz())

	next, err := SelectAnswer(s, "Berlin")
	require.NoError(t, err)
	assert.Equal(t, models.AnswerMap{0: "Berlin"}, next.Answers)
	assert.Equal(t, 0, next.CurrentIndex, "selecting does not advance")
	assert.Empty(t, s.Answers, "input state is not modified")

	next, err = SelectAnswer(next, "Paris")
	require.NoError(t, err)
	assert.Equal(t, models.AnswerMap{0: "Paris"}, next.Answers)

	// options outside the list are recorded as given
	next, err = SelectAnswer(next, "Lyon")
	require.NoError(t, err)
	assert.Equal(t, "Lyon", next.Answers[0])
}

func TestAdvance(t *testing.T) {
	s := mustState(t, numberedQuiz(3))

	s, err := Advance(s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentIndex)
	assert.False(t, s.Completed)
	assert.Nil(t, s.Result)

	s, err = Advance(s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.CurrentIndex)
	assert.False(t, s.Completed)

	s, err = Advance(s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.CurrentIndex, "index stays on the last question")
	assert.True(t, s.Completed)
	require.NotNil(t, s.Result)
	assert.Equal(t, 3, s.Result.Score.Total)
	assert.Len(t, s.Result.Breakdown, 3)
}

func TestAdvance_UnansweredIsNotRejected(t *testing.T) {
	s := mustState(t, capitalsQuiz())
	s, err := Advance(s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentIndex)
}

func TestAllAnsweredDoesNotComplete(t *testing.T) {
	s := mustState(t, capitalsQuiz())
	s, _ = SelectAnswer(s, "Paris")
	s, _ = Advance(s)
	s, _ = SelectAnswer(s, "42")

	assert.False(t, s.Completed)
	assert.Nil(t, s.Result)
}

func TestRetreat(t *testing.T) {
	s := mustState(t, numberedQuiz(3))

	next, err := Retreat(s)
	require.NoError(t, err)
	assert.Equal(t, s, next, "retreat at the first question is a no-op")

	s, _ = SelectAnswer(s, "A")
	s, _ = Advance(s)
	s, _ = SelectAnswer(s, "B")

	s, err = Retreat(s)
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, models.AnswerMap{0: "A", 1: "B"}, s.Answers, "answers are kept")
}

func TestJumpTo(t *testing.T) {
	s := mustState(t, numberedQuiz(5))

	for _, idx := range []int{4, 0, 2} {
		next, err := JumpTo(s, idx)
		require.NoError(t, err)
		assert.Equal(t, idx, next.CurrentIndex)
	}

	s, _ = JumpTo(s, 3)
	for _, idx := range []int{-1, 5, 10} {
		next, err := JumpTo(s, idx)
		assert.ErrorIs(t, err, ErrInvalidIndex)
		assert.True(t, IsInvalidIndex(err))
		assert.Equal(t, s, next)
	}
}

func TestJumpTo_AfterCompletion(t *testing.T) {
	s := mustState(t, numberedQuiz(5))
	s, err := Finish(s)
	require.NoError(t, err)

	next, err := JumpTo(s, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, next.CurrentIndex)
	assert.True(t, next.Completed)
	assert.Equal(t, s.Result, next.Result)

	next, err = JumpTo(s, 10)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 0, next.CurrentIndex)
}

func TestCompletedRejectsMutations(t *testing.T) {
	s := mustState(t, capitalsQuiz())
	s, _ = SelectAnswer(s, "Paris")
	s, err := Finish(s)
	require.NoError(t, err)

	ops := map[string]func(models.SessionState) (models.SessionState, error){
		OpSelectAnswer: func(s models.SessionState) (models.SessionState, error) { return SelectAnswer(s, "Rome") },
		OpAdvance:      Advance,
		OpRetreat:      Retreat,
		OpFinish:       Finish,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			next, err := op(s)
			require.Error(t, err)
			assert.True(t, IsInvalidState(err))

			var stateErr *StateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, name, stateErr.Operation)
			assert.Equal(t, models.SessionStatusCompleted, stateErr.Status)
			assert.Equal(t, s, next)
		})
	}
}

func TestReset(t *testing.T) {
	q := numberedQuiz(4)
	s := mustState(t, q)
	s, _ = SelectAnswer(s, "A")
	s, _ = Advance(s)
	s, _ = SelectAnswer(s, "C")

	assert.Equal(t, initialState(q), Reset(s))

	s, _ = Finish(s)
	s, _ = JumpTo(s, 3)
	assert.Equal(t, initialState(q), Reset(s))
}

func TestScenarioA(t *testing.T) {
	s := mustState(t, capitalsQuiz())
	s, _ = SelectAnswer(s, "Paris")
	s, _ = Advance(s)
	s, _ = SelectAnswer(s, "41")
	s, err := Advance(s)
	require.NoError(t, err)

	require.True(t, s.Completed)
	assert.Equal(t, models.ScoreSummary{CorrectCount: 1, Total: 2, Percentage: 50}, s.Result.Score)
	assert.Equal(t, models.TierGood, s.Result.Tier)
}

func TestScenarioB(t *testing.T) {
	s := mustState(t, capitalsQuiz())
	s, _ = SelectAnswer(s, "Paris")
	s, err := Finish(s)
	require.NoError(t, err)

	require.True(t, s.Completed)
	assert.Equal(t, 0, s.CurrentIndex)
	item := s.Result.Breakdown[1]
	assert.Equal(t, models.NotAnswered, item.UserAnswer)
	assert.False(t, item.IsCorrect)
}

func TestScenarioC(t *testing.T) {
	q := numberedQuiz(5)
	s := mustState(t, q)
	for i := range q {
		s, _ = SelectAnswer(s, q[i].Answer)
		s, _ = Advance(s)
	}

	require.True(t, s.Completed)
	assert.Equal(t, 100, s.Result.Score.Percentage)
	assert.Equal(t, models.TierExcellent, s.Result.Tier)
}

func TestScenarioD(t *testing.T) {
	s := mustState(t, numberedQuiz(5))
	s, _ = Advance(s)

	next, err := JumpTo(s, 10)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 1, next.CurrentIndex)
}

func TestView(t *testing.T) {
	s := mustState(t, capitalsQuiz())

	view := View(s)
	assert.Equal(t, 0, view.CurrentIndex)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.Question.Number)
	assert.Equal(t, "green", view.Question.DifficultyColor)
	assert.False(t, view.Answered)
	assert.Nil(t, view.SelectedAnswer)
	assert.False(t, view.IsLastQuestion)
	assert.Equal(t, models.SessionStatusInProgress, view.Status)

	s, _ = SelectAnswer(s, "Paris")
	s, _ = Advance(s)
	view = View(s)
	assert.False(t, view.Answered)
	assert.True(t, view.IsLastQuestion)
	assert.Equal(t, 1, view.AnsweredCount)
	assert.Equal(t, "yellow", view.Question.DifficultyColor)

	s, _ = Retreat(s)
	view = View(s)
	require.NotNil(t, view.SelectedAnswer)
	assert.Equal(t, "Paris", *view.SelectedAnswer)
	assert.True(t, view.Answered)
}
