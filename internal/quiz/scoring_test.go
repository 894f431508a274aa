package quiz

import (
	"math/rand"
	"testing"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		quiz    models.Quiz
		answers models.AnswerMap
		want    models.ScoreSummary
	}{
		{
			name:    "one of two correct",
			quiz:    capitalsQuiz(),
			answers: models.AnswerMap{0: "Paris", 1: "41"},
			want:    models.ScoreSummary{CorrectCount: 1, Total: 2, Percentage: 50},
		},
		{
			name:    "unanswered questions count as wrong",
			quiz:    capitalsQuiz(),
			answers: models.AnswerMap{},
			want:    models.ScoreSummary{CorrectCount: 0, Total: 2, Percentage: 0},
		},
		{
			name:    "comparison is case sensitive",
			quiz:    capitalsQuiz(),
			answers: models.AnswerMap{0: "paris", 1: "42"},
			want:    models.ScoreSummary{CorrectCount: 1, Total: 2, Percentage: 50},
		},
		{
			name:    "no trimming",
			quiz:    capitalsQuiz(),
			answers: models.AnswerMap{0: " Paris", 1: "42 "},
			want:    models.ScoreSummary{CorrectCount: 0, Total: 2, Percentage: 0},
		},
		{
			name:    "two of three rounds to 67",
			quiz:    numberedQuiz(3),
			answers: models.AnswerMap{0: "A", 1: "B", 2: "D"},
			want:    models.ScoreSummary{CorrectCount: 2, Total: 3, Percentage: 67},
		},
		{
			name:    "all correct",
			quiz:    numberedQuiz(5),
			answers: models.AnswerMap{0: "A", 1: "B", 2: "C", 3: "D", 4: "A"},
			want:    models.ScoreSummary{CorrectCount: 5, Total: 5, Percentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeScore(tt.quiz, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeScore_EmptyQuiz(t *testing.T) {
	_, err := ComputeScore(models.Quiz{}, models.AnswerMap{})
	assert.ErrorIs(t, err, ErrEmptyQuiz)
	assert.True(t, IsEmptyQuiz(err))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 8, 38},
		{7, 10, 70},
		{1, 200, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}

func TestComputeScore_MatchesCorrectAnswerCount(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	options := []string{"A", "B", "C", "D"}

	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(12)
		q := numberedQuiz(n)
		answers := models.AnswerMap{}
		expected := 0
		for i := 0; i < n; i++ {
			if r.Intn(3) == 0 {
				continue
			}
			answers[i] = options[r.Intn(len(options))]
			if answers[i] == q[i].Answer {
				expected++
			}
		}

		got, err := ComputeScore(q, answers)
		require.NoError(t, err)
		assert.Equal(t, expected, got.CorrectCount)
		assert.Equal(t, n, got.Total)
		assert.Equal(t, Percentage(expected, n), got.Percentage)
	}
}
