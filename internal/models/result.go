package models

// NotAnswered is shown in the breakdown for questions without an answer.
const NotAnswered = "Not answered"

type FeedbackTier string

const (
	TierExcellent FeedbackTier = "excellent"
	TierGood      FeedbackTier = "good"
	TierNeedsWork FeedbackTier = "needs_work"
)

type ScoreSummary struct {
	CorrectCount int `json:"correct_count"`
	Total        int `json:"total"`
	Percentage   int `json:"percentage"`
}

type BreakdownItem struct {
	Index         int             `json:"index"`
	QuestionText  string          `json:"question_text"`
	Difficulty    DifficultyLevel `json:"difficulty"`
	UserAnswer    string          `json:"user_answer"`
	CorrectAnswer string          `json:"correct_answer"`
	IsCorrect     bool            `json:"is_correct"`
	Answered      bool            `json:"answered"`
	Explanation   string          `json:"explanation,omitempty"`
}

// ResultBreakdown is ordered the same way as the quiz.
type ResultBreakdown []BreakdownItem

// QuizResult is computed once when a session completes and is never
// modified afterwards.
type QuizResult struct {
	Score     ScoreSummary    `json:"score"`
	Breakdown ResultBreakdown `json:"breakdown"`
	Tier      FeedbackTier    `json:"tier"`
}

// ResultView decorates a result with presentation data for the renderer.
type ResultView struct {
	SessionID string          `json:"session_id,omitempty"`
	Title     string          `json:"title,omitempty"`
	Score     ScoreSummary    `json:"score"`
	Breakdown ResultBreakdown `json:"breakdown"`
	Tier      FeedbackTier    `json:"tier"`
	TierStyle TierStyle       `json:"tier_style"`
}
