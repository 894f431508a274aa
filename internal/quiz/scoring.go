package quiz

import "github.com/SAP-F-2025/quiz-session-service/internal/models"

// IsCorrect is the single per-question predicate used by both the score and
// the breakdown: an answer must exist and equal the correct answer exactly.
func IsCorrect(q models.Question, answer string, answered bool) bool {
	return answered && answer == q.Answer
}

// ComputeScore counts the correct answers of a quiz.
func ComputeScore(quiz models.Quiz, answers models.AnswerMap) (models.ScoreSummary, error) {
	total := quiz.Len()
	if total == 0 {
		return models.ScoreSummary{}, ErrEmptyQuiz
	}

	correct := 0
	for i, q := range quiz {
		answer, answered := answers.Get(i)
		if IsCorrect(q, answer, answered) {
			correct++
		}
	}

	return models.ScoreSummary{
		CorrectCount: correct,
		Total:        total,
		Percentage:   Percentage(correct, total),
	}, nil
}

// Percentage returns correct/total*100 rounded half up. total must be > 0.
func Percentage(correct, total int) int {
	// (2*100*correct + total) / (2*total) is round-half-up without floats.
	return (200*correct + total) / (2 * total)
}
