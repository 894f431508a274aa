package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestQuizRecord_ToDocument(t *testing.T) {
	record := &QuizRecord{
		ID:    7,
		URL:   "https://en.wikipedia.org/wiki/Alan_Turing",
		Title: "Alan Turing",
		Quiz: datatypes.JSON(`[
			{"question": "Where did Turing work during WWII?",
			 "options": ["Bletchley Park", "Cambridge", "Manchester", "Princeton"],
			 "answer": "Bletchley Park",
			 "difficulty": "easy",
			 "explanation": "He worked at Bletchley Park on codebreaking."}
		]`),
		RelatedTopics: datatypes.JSON(`["Enigma machine", "Turing test"]`),
	}

	doc, err := record.ToDocument()
	require.NoError(t, err)

	assert.Equal(t, uint(7), doc.ID)
	assert.Equal(t, "Alan Turing", doc.Title)
	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Equal(t, "Where did Turing work during WWII?", q.Text)
	assert.Equal(t, DifficultyEasy, q.Difficulty)
	assert.True(t, q.HasOption("Bletchley Park"))
	assert.Equal(t, []string{"Enigma machine", "Turing test"}, doc.RelatedTopics)
}

func TestQuizRecord_ToDocument_BadJSON(t *testing.T) {
	record := &QuizRecord{ID: 1, Quiz: datatypes.JSON(`{"not": "a list"}`)}

	_, err := record.ToDocument()
	assert.Error(t, err)
}

func TestStyles(t *testing.T) {
	tests := []struct {
		difficulty DifficultyLevel
		color      string
	}{
		{DifficultyEasy, "green"},
		{DifficultyMedium, "yellow"},
		{DifficultyHard, "red"},
		{DifficultyLevel("extreme"), "gray"},
	}
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			assert.Equal(t, tt.color, tt.difficulty.Style().Color)
		})
	}

	assert.Equal(t, "green", TierExcellent.Style().Color)
	assert.Equal(t, "yellow", TierGood.Style().Color)
	assert.Equal(t, "red", TierNeedsWork.Style().Color)
}
