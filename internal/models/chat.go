package models

// Turn role constants for conversation history
const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// ConversationTurn represents a single message in a conversation
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// PredictionRequest is the payload sent to the remote prediction endpoint
type PredictionRequest struct {
	Question string             `json:"question"`
	History  []ConversationTurn `json:"history,omitempty"`
}

// PredictionResponse is the reply from the remote prediction endpoint
type PredictionResponse struct {
	Text string `json:"text"`
}

// ChatRequest is the payload accepted by the chat endpoint
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply returned by the chat endpoint
type ChatResponse struct {
	Reply string `json:"reply"`
}
