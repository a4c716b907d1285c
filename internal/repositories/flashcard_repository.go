// Package repositories provides in-memory data access for saved
// flashcards and document metadata.
package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/questscholar/backend/internal/models"
)

// flashcardRepository implements an in-memory saved-flashcard list
type flashcardRepository struct {
	mu     sync.RWMutex
	cards  []models.SavedFlashcard
	nextID int
}

// NewFlashcardRepository creates an empty in-memory flashcard repository
func NewFlashcardRepository() *flashcardRepository {
	return &flashcardRepository{nextID: 1}
}

// GetAll returns all saved flashcards in insertion order
func (r *flashcardRepository) GetAll(ctx context.Context) ([]models.SavedFlashcard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SavedFlashcard, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

// Create appends a flashcard, assigning the next auto-increment id
func (r *flashcardRepository) Create(ctx context.Context, card *models.SavedFlashcard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	card.ID = r.nextID
	r.nextID++
	r.cards = append(r.cards, *card)
	return nil
}

// DeleteByID removes the flashcard with the given id
func (r *flashcardRepository) DeleteByID(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, card := range r.cards {
		if card.ID == id {
			r.cards = append(r.cards[:i], r.cards[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("flashcard %d not found", id)
}
