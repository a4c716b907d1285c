package assistant

import (
	"testing"

	"github.com/questscholar/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCards(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedCards []models.Flashcard
		expectedError bool
	}{
		{
			name: "array surrounded by prose",
			text: `Sure! [{"question":"Q","answer":"A"}]`,
			expectedCards: []models.Flashcard{
				{Question: "Q", Answer: "A"},
			},
		},
		{
			name: "bare array",
			text: `[{"question":"1+1?","answer":"2"}]`,
			expectedCards: []models.Flashcard{
				{Question: "1+1?", Answer: "2"},
			},
		},
		{
			name: "multiline array with trailing prose",
			text: "Here are your cards:\n[\n  {\"question\": \"What is Go?\", \"answer\": \"A language\"},\n  {\"question\": \"Year?\", \"answer\": \"2009\"}\n]\nHappy studying!",
			expectedCards: []models.Flashcard{
				{Question: "What is Go?", Answer: "A language"},
				{Question: "Year?", Answer: "2009"},
			},
		},
		{
			name:          "no brackets",
			text:          "I cannot produce flashcards for that topic.",
			expectedError: true,
		},
		{
			name:          "brackets with invalid JSON",
			text:          "[{bad json}]",
			expectedError: true,
		},
		{
			name:          "malformed JSON is not repaired",
			text:          `[{"question":"Q","answer":"A",}]`,
			expectedError: true,
		},
		{
			name:          "empty input",
			text:          "",
			expectedError: true,
		},
		{
			name: "objects without expected fields propagate verbatim",
			text: `[{"prompt":"Q"}]`,
			expectedCards: []models.Flashcard{
				{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ExtractCards(tt.text)

			if tt.expectedError {
				require.ErrorIs(t, err, ErrExtractionFailed)
				assert.Nil(t, cards)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedCards, cards)
			}
		})
	}
}
