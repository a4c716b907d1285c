package models

// Flashcard represents a single question/answer card
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SavedFlashcard is a flashcard stored in the saved-cards list
type SavedFlashcard struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Deck holds one generated batch of flashcards together with view state
type Deck struct {
	Topic        string      `json:"topic"`
	Cards        []Flashcard `json:"cards"`
	CurrentIndex int         `json:"currentIndex"`
	Flipped      bool        `json:"flipped"`
}

// Current returns the card under the cursor, or nil for an empty deck
func (d *Deck) Current() *Flashcard {
	if len(d.Cards) == 0 || d.CurrentIndex < 0 || d.CurrentIndex >= len(d.Cards) {
		return nil
	}
	return &d.Cards[d.CurrentIndex]
}

// Next advances to the next card, resetting the flip state.
// The cursor clamps at the last card.
func (d *Deck) Next() {
	if d.CurrentIndex < len(d.Cards)-1 {
		d.Flipped = false
		d.CurrentIndex++
	}
}

// Prev moves back to the previous card, resetting the flip state.
// The cursor clamps at the first card.
func (d *Deck) Prev() {
	if d.CurrentIndex > 0 {
		d.Flipped = false
		d.CurrentIndex--
	}
}

// ToggleFlip flips the current card between question and answer
func (d *Deck) ToggleFlip() {
	d.Flipped = !d.Flipped
}
