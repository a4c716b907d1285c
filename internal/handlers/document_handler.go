package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// DocumentService is the interface that wraps document dashboard logic
type DocumentService interface {
	// Method List returns all document metadata, newest first.
	List(ctx context.Context) ([]models.Document, error)
	// Method Get returns one document by id.
	//
	// If no document with such id exists, an error is returned.
	Get(ctx context.Context, id string) (*models.Document, error)
	// Method Upload registers a new document in processing status.
	Upload(ctx context.Context, filename string, size int64) (*models.Document, error)
}

// DocumentHandler handles admin document dashboard HTTP requests
type DocumentHandler struct {
	BaseHandler
	documentService DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		documentService: documentService,
	}
}

// RegisterRoutes registers all document handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *DocumentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}/status", h.Status)
	})
	r.Post("/upload", h.Upload)
	r.Post("/query", h.Query)
}

// List handles GET /documents
// @Summary List documents
// @Description Return the document metadata shown on the admin dashboard.
// @Tags documents
// @Produce json
// @Success 200 {array} models.Document
// @Router /documents [get]
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list documents", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}

	h.RespondJSON(w, http.StatusOK, docs)
}

// Status handles GET /documents/{id}/status
// @Summary Get document processing status
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]string "Current status"
// @Failure 404 {object} map[string]string "Document not found"
// @Router /documents/{id}/status [get]
func (h *DocumentHandler) Status(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"id":     doc.ID,
		"status": string(doc.Status),
	})
}

// Upload handles POST /upload
// @Summary Upload a document
// @Description Register an uploaded document. The file itself is discarded; the real processing pipeline is a stub and the document is marked processed after a fixed delay.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Success 201 {object} models.Document
// @Failure 400 {object} map[string]string "File is required"
// @Router /upload [post]
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Limit matches the request size middleware
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	doc, err := h.documentService.Upload(r.Context(), fileHeader.Filename, fileHeader.Size)
	if err != nil {
		h.Logger.Error("failed to register upload", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to register upload")
		return
	}

	h.RespondJSON(w, http.StatusCreated, doc)
}

// QueryRequest is the document query payload
type QueryRequest struct {
	Question string `json:"question"`
}

// Query handles POST /query
// @Summary Query the document knowledge base
// @Description The retrieval backend is a stub collaborator; this endpoint always succeeds with a canned answer.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Question"
// @Success 200 {object} map[string]string "Canned answer"
// @Router /query [post]
func (h *DocumentHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"answer":  "This is a simulated answer from the document knowledge base.",
		"sources": "Advanced Mathematics Textbook",
	})
}
