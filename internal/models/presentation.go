package models

// Lookup tables shared by the in-progress view and the results view.

type DifficultyStyle struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type TierStyle struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

var difficultyStyles = map[DifficultyLevel]DifficultyStyle{
	DifficultyEasy:   {Label: "Easy", Color: "green"},
	DifficultyMedium: {Label: "Medium", Color: "yellow"},
	DifficultyHard:   {Label: "Hard", Color: "red"},
}

var tierStyles = map[FeedbackTier]TierStyle{
	TierExcellent: {Label: "Excellent", Color: "green", Message: "Excellent work! You know this topic well."},
	TierGood:      {Label: "Good", Color: "yellow", Message: "Good effort. Review the questions you missed."},
	TierNeedsWork: {Label: "Needs work", Color: "red", Message: "Keep practicing. Re-read the article and try again."},
}

// Style returns the display style for the difficulty; unknown tags render gray.
func (d DifficultyLevel) Style() DifficultyStyle {
	if s, ok := difficultyStyles[d]; ok {
		return s
	}
	return DifficultyStyle{Label: string(d), Color: "gray"}
}

func (d DifficultyLevel) IsValid() bool {
	_, ok := difficultyStyles[d]
	return ok
}

func (t FeedbackTier) Style() TierStyle {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return TierStyle{Label: string(t), Color: "gray"}
}
