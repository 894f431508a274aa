package quiz

import (
	"testing"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackTierFor(t *testing.T) {
	tests := []struct {
		percentage int
		want       models.FeedbackTier
	}{
		{100, models.TierExcellent},
		{70, models.TierExcellent},
		{69, models.TierGood},
		{50, models.TierGood},
		{49, models.TierNeedsWork},
		{0, models.TierNeedsWork},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FeedbackTierFor(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestBreakdown(t *testing.T) {
	q := capitalsQuiz()
	items := Breakdown(q, models.AnswerMap{0: "Paris"})

	require.Len(t, items, 2)

	assert.Equal(t, models.BreakdownItem{
		Index:         0,
		QuestionText:  q[0].Text,
		Difficulty:    models.DifficultyEasy,
		UserAnswer:    "Paris",
		CorrectAnswer: "Paris",
		IsCorrect:     true,
		Answered:      true,
		Explanation:   q[0].Explanation,
	}, items[0])

	assert.Equal(t, models.NotAnswered, items[1].UserAnswer)
	assert.Equal(t, "42", items[1].CorrectAnswer)
	assert.False(t, items[1].IsCorrect)
	assert.False(t, items[1].Answered)
}

func TestBreakdown_LiteralNotAnsweredIsStillWrong(t *testing.T) {
	q := models.Quiz{{
		Text:       "Pick the literal",
		Options:    []string{models.NotAnswered, "Other"},
		Answer:     models.NotAnswered,
		Difficulty: models.DifficultyEasy,
	}}

	items := Breakdown(q, models.AnswerMap{})
	assert.Equal(t, models.NotAnswered, items[0].UserAnswer)
	assert.False(t, items[0].IsCorrect)
}

func TestBreakdown_AgreesWithScore(t *testing.T) {
	q := numberedQuiz(6)
	answers := models.AnswerMap{0: "A", 1: "C", 3: "D", 5: "B"}

	score, err := ComputeScore(q, answers)
	require.NoError(t, err)

	correct := 0
	for _, item := range Breakdown(q, answers) {
		if item.IsCorrect {
			correct++
		}
	}
	assert.Equal(t, score.CorrectCount, correct)
}

func TestBuildResult(t *testing.T) {
	result, err := BuildResult(numberedQuiz(4), models.AnswerMap{0: "A", 1: "B", 2: "C"})
	require.NoError(t, err)

	assert.Equal(t, models.ScoreSummary{CorrectCount: 3, Total: 4, Percentage: 75}, result.Score)
	assert.Equal(t, models.TierExcellent, result.Tier)
	assert.Len(t, result.Breakdown, 4)

	_, err = BuildResult(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyQuiz)
}
