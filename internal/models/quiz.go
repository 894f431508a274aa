package models

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Question is a single multiple-choice item of a quiz document.
// The JSON names follow the document produced by the quiz generator.
type Question struct {
	Text        string          `json:"question" validate:"required"`
	Options     []string        `json:"options" validate:"required,min=2,dive,required"`
	Answer      string          `json:"answer" validate:"required"`
	Difficulty  DifficultyLevel `json:"difficulty" validate:"required,difficulty_level"`
	Explanation string          `json:"explanation"`
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Quiz is the ordered, immutable question list a session is built on.
type Quiz []Question

func (q Quiz) Len() int {
	return len(q)
}

// InRange reports whether index addresses a question of the quiz.
func (q Quiz) InRange(index int) bool {
	return index >= 0 && index < len(q)
}

// QuizDocument is the full document handed over by the quiz provider.
type QuizDocument struct {
	ID            uint     `json:"id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Questions     Quiz     `json:"quiz" validate:"required,min=1,dive"`
	RelatedTopics []string `json:"related_topics"`
}
