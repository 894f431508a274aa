package quiz

import "github.com/SAP-F-2025/quiz-session-service/internal/models"

// feedbackTiers is ordered by descending lower bound; the first match wins.
var feedbackTiers = []struct {
	min  int
	tier models.FeedbackTier
}{
	{min: 70, tier: models.TierExcellent},
	{min: 50, tier: models.TierGood},
}

// FeedbackTierFor maps a percentage score to its feedback tier.
func FeedbackTierFor(percentage int) models.FeedbackTier {
	for _, t := range feedbackTiers {
		if percentage >= t.min {
			return t.tier
		}
	}
	return models.TierNeedsWork
}

// Breakdown builds the per-question report in quiz order.
func Breakdown(quiz models.Quiz, answers models.AnswerMap) models.ResultBreakdown {
	items := make(models.ResultBreakdown, len(quiz))
	for i, q := range quiz {
		answer, answered := answers.Get(i)
		userAnswer := answer
		if !answered {
			userAnswer = models.NotAnswered
		}

		items[i] = models.BreakdownItem{
			Index:         i,
			QuestionText:  q.Text,
			Difficulty:    q.Difficulty,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Answer,
			IsCorrect:     IsCorrect(q, answer, answered),
			Answered:      answered,
			Explanation:   q.Explanation,
		}
	}
	return items
}

// BuildResult computes the score, breakdown and tier of a finished session.
func BuildResult(quiz models.Quiz, answers models.AnswerMap) (*models.QuizResult, error) {
	score, err := ComputeScore(quiz, answers)
	if err != nil {
		return nil, err
	}

	return &models.QuizResult{
		Score:     score,
		Breakdown: Breakdown(quiz, answers),
		Tier:      FeedbackTierFor(score.Percentage),
	}, nil
}
