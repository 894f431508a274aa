package quiz

import (
	"testing"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Walkthrough(t *testing.T) {
	sess, err := NewSession(capitalsQuiz())
	require.NoError(t, err)

	assert.Equal(t, "What is the capital of France?", sess.CurrentQuestion().Text)
	assert.False(t, sess.IsCurrentAnswered())

	require.NoError(t, sess.SelectAnswer("Paris"))
	assert.True(t, sess.IsCurrentAnswered())
	require.NoError(t, sess.Advance())
	require.NoError(t, sess.SelectAnswer("42"))
	require.NoError(t, sess.Retreat())
	assert.Equal(t, 0, sess.State().CurrentIndex)
	require.NoError(t, sess.JumpTo(1))

	assert.Nil(t, sess.Result())
	require.NoError(t, sess.Advance())
	assert.True(t, sess.Completed())
	require.NotNil(t, sess.Result())
	assert.Equal(t, 100, sess.Result().Score.Percentage)

	err = sess.SelectAnswer("41")
	assert.True(t, IsInvalidState(err))
	assert.Equal(t, "42", sess.State().Answers[1])

	sess.Reset()
	assert.False(t, sess.Completed())
	assert.Nil(t, sess.Result())
	assert.Empty(t, sess.State().Answers)
	assert.Equal(t, 0, sess.View().CurrentIndex)
}

func TestSession_FailedOperationKeepsState(t *testing.T) {
	sess, err := NewSession(numberedQuiz(5))
	require.NoError(t, err)
	require.NoError(t, sess.JumpTo(2))

	before := sess.State()
	err = sess.JumpTo(10)
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 10, idxErr.Index)
	assert.Equal(t, 5, idxErr.Total)
	assert.Equal(t, before, sess.State())
}

func TestNewSession_EmptyQuiz(t *testing.T) {
	sess, err := NewSession(nil)
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrEmptyQuiz)
}

func TestRestore(t *testing.T) {
	q := capitalsQuiz()

	sess, err := Restore(models.SessionState{Quiz: q, CurrentIndex: 1})
	require.NoError(t, err)
	assert.NotNil(t, sess.State().Answers)
	require.NoError(t, sess.SelectAnswer("42"))

	_, err = Restore(models.SessionState{Quiz: q, CurrentIndex: 2})
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = Restore(models.SessionState{})
	assert.ErrorIs(t, err, ErrEmptyQuiz)
}

func TestRestore_AnswerOutsideQuiz(t *testing.T) {
	q := capitalsQuiz()

	tests := []struct {
		name    string
		answers models.AnswerMap
		index   int
	}{
		{"past the last question", models.AnswerMap{0: "Paris", 7: "x"}, 7},
		{"negative index", models.AnswerMap{-1: "y"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(models.SessionState{Quiz: q, Answers: tt.answers})
			var indexErr *IndexError
			require.ErrorAs(t, err, &indexErr)
			assert.Equal(t, tt.index, indexErr.Index)
			assert.Equal(t, q.Len(), indexErr.Total)
		})
	}

	sess, err := Restore(models.SessionState{Quiz: q, Answers: models.AnswerMap{0: "Paris", 1: "42"}})
	require.NoError(t, err)
	assert.Equal(t, 2, sess.View().AnsweredCount)
}
