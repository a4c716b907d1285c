package services

import (
	"context"
	"fmt"

	"github.com/questscholar/backend/internal/assistant"
	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// flashcardBatchSize is the number of cards requested per generation call
const flashcardBatchSize = 5

// flashcardPrompt asks the model for a parseable card array
const flashcardPrompt = `Generate %d flashcards about %q. Format your response as a JSON array with each object having "question" and "answer" fields. Keep the answers concise.`

// FlashcardRepository is the interface that wraps saved-flashcard data access
type FlashcardRepository interface {
	// Method GetAll returns all saved flashcards in insertion order.
	GetAll(ctx context.Context) ([]models.SavedFlashcard, error)
	// Method Create appends a flashcard, assigning an auto-increment id
	// to the passed card.
	Create(ctx context.Context, card *models.SavedFlashcard) error
	// Method DeleteByID removes a flashcard by id.
	//
	// If no flashcard with such id exists, an error is returned.
	DeleteByID(ctx context.Context, id int) error
}

// flashcardService generates card decks from the prediction endpoint and
// manages the saved-card list
type flashcardService struct {
	client ConversationClient
	repo   FlashcardRepository
	logger *zap.Logger
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(client ConversationClient, repo FlashcardRepository, logger *zap.Logger) *flashcardService {
	return &flashcardService{
		client: client,
		repo:   repo,
		logger: logger,
	}
}

// Generate asks the model for one batch of flashcards on the topic and
// returns a fresh deck with the cursor on the first card.
//
// The call is stateless: no conversation history is threaded. Extraction
// failure is recoverable; the caller surfaces it and may retry with any
// topic.
func (s *flashcardService) Generate(ctx context.Context, topic string) (*models.Deck, error) {
	question := fmt.Sprintf(flashcardPrompt, flashcardBatchSize, topic)

	text := s.client.Send(ctx, question, nil)

	cards, err := assistant.ExtractCards(text)
	if err != nil {
		s.logger.Warn("flashcard extraction failed", zap.String("topic", topic), zap.Error(err))
		return nil, err
	}

	s.logger.Info("flashcards generated", zap.String("topic", topic), zap.Int("count", len(cards)))

	return &models.Deck{
		Topic:        topic,
		Cards:        cards,
		CurrentIndex: 0,
		Flipped:      false,
	}, nil
}

// Saved returns all saved flashcards
func (s *flashcardService) Saved(ctx context.Context) ([]models.SavedFlashcard, error) {
	return s.repo.GetAll(ctx)
}

// Save appends a flashcard to the saved list and returns it with its
// assigned id
func (s *flashcardService) Save(ctx context.Context, question, answer string) (*models.SavedFlashcard, error) {
	if question == "" || answer == "" {
		return nil, fmt.Errorf("question and answer are required")
	}

	card := &models.SavedFlashcard{Question: question, Answer: answer}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save flashcard: %w", err)
	}

	return card, nil
}

// Delete removes a saved flashcard by id
func (s *flashcardService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteByID(ctx, id)
}
