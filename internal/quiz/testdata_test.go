package quiz

import (
	"fmt"

	"github.com/SAP-F-2025/quiz-session-service/internal/models"
)

func capitalsQuiz() models.Quiz {
	return models.Quiz{
		{
			Text:        "What is the capital of France?",
			Options:     []string{"Berlin", "Paris", "Madrid", "Rome"},
			Answer:      "Paris",
			Difficulty:  models.DifficultyEasy,
			Explanation: "Paris has been the capital since the 10th century.",
		},
		{
			Text:        "What is the answer to life, the universe and everything?",
			Options:     []string{"41", "42", "43", "44"},
			Answer:      "42",
			Difficulty:  models.DifficultyMedium,
			Explanation: "According to the Hitchhiker's Guide.",
		},
	}
}

func numberedQuiz(n int) models.Quiz {
	q := make(models.Quiz, n)
	for i := range q {
		q[i] = models.Question{
			Text:       fmt.Sprintf("Question %d", i+1),
			Options:    []string{"A", "B", "C", "D"},
			Answer:     []string{"A", "B", "C", "D"}[i%4],
			Difficulty: models.DifficultyHard,
		}
	}
	return q
}
