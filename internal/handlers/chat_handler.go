package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// ChatService is the interface that wraps conversation business logic
type ChatService interface {
	// Method SendMessage sends the user message with the accumulated
	// conversation history and records both the user turn and the
	// assistant reply.
	//
	// The returned reply is always user-presentable; upstream failures
	// come back as an apology string, never an error.
	SendMessage(ctx context.Context, message string) string
	// Method History returns a copy of the accumulated conversation turns.
	History() []models.ConversationTurn
	// Method Reset drops the accumulated conversation.
	Reset()
}

// PredictionProxy is the interface that wraps the raw upstream relay
type PredictionProxy interface {
	// Method Forward relays a raw request body to the prediction endpoint
	// and returns the upstream response bytes and status code.
	//
	// If the upstream call cannot be completed at all, an error is
	// returned.
	Forward(ctx context.Context, payload []byte) ([]byte, int, error)
}

// ChatHandler handles chat and proxy HTTP requests
type ChatHandler struct {
	BaseHandler
	chatService ChatService
	proxy       PredictionProxy
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService ChatService, proxy PredictionProxy, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: BaseHandler{Logger: logger},
		chatService: chatService,
		proxy:       proxy,
	}
}

// RegisterRoutes registers all chat handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/", h.Chat)
		r.Get("/history", h.History)
		r.Post("/reset", h.Reset)
	})
	r.Post("/flowise", h.Proxy)
}

// Chat handles POST /chat
// @Summary Send a chat message
// @Description Send a message to the assistant. Prior turns of this conversation are threaded into the request; the new exchange is appended to the history.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.chatService.SendMessage(r.Context(), req.Message)

	h.RespondJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// History handles GET /chat/history
// @Summary Get conversation history
// @Description Return the accumulated conversation turns of the current chat. History lives in memory only.
// @Tags chat
// @Produce json
// @Success 200 {array} models.ConversationTurn
// @Router /chat/history [get]
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	history := h.chatService.History()
	if history == nil {
		history = []models.ConversationTurn{}
	}
	h.RespondJSON(w, http.StatusOK, history)
}

// Reset handles POST /chat/reset
// @Summary Reset the conversation
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]string "Conversation cleared"
// @Router /chat/reset [post]
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.chatService.Reset()
	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "conversation cleared"})
}

// Proxy handles POST /flowise
// @Summary Relay a raw prediction request
// @Description Forward the request body to the remote prediction endpoint untouched and relay the upstream JSON response.
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} models.PredictionResponse
// @Failure 500 {object} map[string]string "Upstream call failed"
// @Router /flowise [post]
func (h *ChatHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	body, status, err := h.proxy.Forward(r.Context(), payload)
	if err != nil {
		h.Logger.Error("failed to forward prediction request", zap.Error(err))
		h.RespondJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}

	// Relay the upstream response verbatim
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.Logger.Error("failed to write proxied response", zap.Error(err))
	}
}
