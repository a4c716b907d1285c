package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/questscholar/backend/internal/assistant"
	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// FlashcardService is the interface that wraps flashcard business logic
type FlashcardService interface {
	// Method Generate asks the model for one batch of flashcards on the
	// topic and returns a fresh deck with the cursor on the first card.
	//
	// If the model output contains no parseable card array, the error
	// wraps assistant.ErrExtractionFailed.
	Generate(ctx context.Context, topic string) (*models.Deck, error)
	// Method Saved returns all saved flashcards.
	Saved(ctx context.Context) ([]models.SavedFlashcard, error)
	// Method Save appends a flashcard to the saved list.
	Save(ctx context.Context, question, answer string) (*models.SavedFlashcard, error)
	// Method Delete removes a saved flashcard by id.
	Delete(ctx context.Context, id int) error
}

// GenerateRequest is the flashcard generation payload
type GenerateRequest struct {
	Topic string `json:"topic"`
}

// SaveCardRequest is the payload for saving a flashcard
type SaveCardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardHandler handles flashcard HTTP requests
type FlashcardHandler struct {
	BaseHandler
	flashcardService FlashcardService
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(flashcardService FlashcardService, logger *zap.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		flashcardService: flashcardService,
	}
}

// RegisterRoutes registers all flashcard handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *FlashcardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/flashcards", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Get("/", h.GetAll)
		r.Post("/", h.Save)
		r.Delete("/{id}", h.Delete)
	})
}

// Generate handles POST /flashcards/generate
// @Summary Generate a flashcard deck
// @Description Generate one batch of flashcards on a topic via the assistant. Extraction of the card array from the model output is best-effort; a response without a parseable array yields 502 and leaves no partial deck.
// @Tags flashcards
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generation topic"
// @Success 200 {object} models.Deck
// @Failure 400 {object} map[string]string "Topic is required"
// @Failure 502 {object} map[string]string "Could not extract flashcards from the response"
// @Router /flashcards/generate [post]
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		h.RespondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	deck, err := h.flashcardService.Generate(r.Context(), req.Topic)
	if err != nil {
		if errors.Is(err, assistant.ErrExtractionFailed) {
			h.RespondError(w, http.StatusBadGateway, "There was an issue generating flashcards. Please try a different topic.")
			return
		}
		h.Logger.Error("failed to generate flashcards", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to generate flashcards")
		return
	}

	h.RespondJSON(w, http.StatusOK, deck)
}

// GetAll handles GET /flashcards
// @Summary List saved flashcards
// @Tags flashcards
// @Produce json
// @Success 200 {array} models.SavedFlashcard
// @Router /flashcards [get]
func (h *FlashcardHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	cards, err := h.flashcardService.Saved(r.Context())
	if err != nil {
		h.Logger.Error("failed to list flashcards", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list flashcards")
		return
	}

	if cards == nil {
		cards = []models.SavedFlashcard{}
	}
	h.RespondJSON(w, http.StatusOK, cards)
}

// Save handles POST /flashcards
// @Summary Save a flashcard
// @Description Append a flashcard to the saved list. The id is assigned by the server.
// @Tags flashcards
// @Accept json
// @Produce json
// @Param request body SaveCardRequest true "Card to save"
// @Success 201 {object} models.SavedFlashcard
// @Failure 400 {object} map[string]string "Question and answer are required"
// @Router /flashcards [post]
func (h *FlashcardHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.flashcardService.Save(r.Context(), req.Question, req.Answer)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, card)
}

// Delete handles DELETE /flashcards/{id}
// @Summary Delete a saved flashcard
// @Tags flashcards
// @Produce json
// @Param id path int true "Flashcard ID"
// @Success 200 {object} map[string]string "Flashcard deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Flashcard not found"
// @Router /flashcards/{id} [delete]
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid flashcard id")
		return
	}

	if err := h.flashcardService.Delete(r.Context(), id); err != nil {
		h.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "flashcard deleted"})
}
