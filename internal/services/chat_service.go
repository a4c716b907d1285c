// Package services contains the business logic for chat, flashcard
// generation and the document dashboard.
package services

import (
	"context"
	"sync"

	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// ConversationClient is the interface that wraps the remote prediction call
type ConversationClient interface {
	// Method Send posts a question plus optional prior turns to the remote
	// prediction endpoint and returns the reply text.
	//
	// "question" parameter is the user's message.
	// "history" parameter carries prior conversation turns, or nil for a
	// stateless call.
	//
	// Send never returns an error: upstream failures come back as a
	// user-facing apology string.
	Send(ctx context.Context, question string, history []models.ConversationTurn) string
}

// chatService threads conversation history through the prediction endpoint
type chatService struct {
	client  ConversationClient
	logger  *zap.Logger
	mu      sync.Mutex
	history []models.ConversationTurn
}

// NewChatService creates a chat service with an empty conversation
func NewChatService(client ConversationClient, logger *zap.Logger) *chatService {
	return &chatService{
		client: client,
		logger: logger,
	}
}

// SendMessage sends the user message with the accumulated history and
// records both the user turn and the assistant reply.
//
// History is append-only and held in memory only; it does not survive a
// restart.
func (s *chatService) SendMessage(ctx context.Context, message string) string {
	s.mu.Lock()
	history := make([]models.ConversationTurn, len(s.history))
	copy(history, s.history)
	s.mu.Unlock()

	reply := s.client.Send(ctx, message, history)

	s.mu.Lock()
	s.history = append(s.history,
		models.ConversationTurn{Role: models.TurnRoleUser, Content: message},
		models.ConversationTurn{Role: models.TurnRoleAssistant, Content: reply},
	)
	turns := len(s.history)
	s.mu.Unlock()

	s.logger.Debug("chat turn completed", zap.Int("history_len", turns))
	return reply
}

// History returns a copy of the accumulated conversation turns
func (s *chatService) History() []models.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

// Reset drops the accumulated conversation
func (s *chatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
