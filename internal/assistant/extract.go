package assistant

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/questscholar/backend/internal/models"
)

// ErrExtractionFailed signals that no parseable JSON array was found in
// the model output. The condition is recoverable; callers surface it and
// stay retry-ready.
var ErrExtractionFailed = errors.New("no parseable JSON array found in response")

// arrayPattern matches the first '[' through the last ']' across the
// whole text, newlines included. Greedy on purpose: the model wraps the
// array in prose on both sides.
var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractCards pulls a flashcard array out of free-form model text.
//
// Best effort by design: the bracketed substring must parse as a JSON
// array of objects, but individual objects are returned verbatim without
// schema validation. Malformed JSON is a hard extraction failure, not a
// partial parse.
func ExtractCards(text string) ([]models.Flashcard, error) {
	match := arrayPattern.FindString(text)
	if match == "" {
		return nil, ErrExtractionFailed
	}

	var cards []models.Flashcard
	if err := json.Unmarshal([]byte(match), &cards); err != nil {
		return nil, ErrExtractionFailed
	}

	return cards, nil
}
