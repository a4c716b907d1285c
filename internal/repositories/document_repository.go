package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/questscholar/backend/internal/models"
)

// seedDocuments is the demo document set shown on the admin dashboard
var seedDocuments = []models.Document{
	{ID: "1", Title: "Advanced Mathematics Textbook", Type: "PDF", Size: "8.4 MB", Status: models.StatusProcessed},
	{ID: "2", Title: "Biology Lab Manual", Type: "PDF", Size: "5.1 MB", Status: models.StatusProcessed},
	{ID: "3", Title: "Literary Criticism Essays", Type: "DOCX", Size: "1.8 MB", Status: models.StatusProcessing},
	{ID: "4", Title: "Physics Problem Sets", Type: "PDF", Size: "3.2 MB", Status: models.StatusProcessed},
	{ID: "5", Title: "History Timeline Notes", Type: "DOCX", Size: "2.0 MB", Status: models.StatusFailed},
	{ID: "6", Title: "Chemistry Lecture Notes", Type: "PDF", Size: "4.3 MB", Status: models.StatusProcessed},
	{ID: "7", Title: "Art History Slides", Type: "PPTX", Size: "6.7 MB", Status: models.StatusProcessed},
	{ID: "8", Title: "Computer Science Algorithms", Type: "PDF", Size: "3.9 MB", Status: models.StatusProcessed},
}

// documentRepository implements an in-memory document metadata store
type documentRepository struct {
	mu   sync.RWMutex
	docs map[string]models.Document
	// insertion order, newest first on the dashboard
	order []string
}

// NewDocumentRepository creates a document repository seeded with the
// demo document set
func NewDocumentRepository() *documentRepository {
	r := &documentRepository{docs: make(map[string]models.Document)}

	now := time.Now()
	for i, doc := range seedDocuments {
		doc.UploadedAt = now.Add(-time.Duration(i) * 48 * time.Hour)
		r.docs[doc.ID] = doc
		r.order = append(r.order, doc.ID)
	}

	return r
}

// GetAll returns all documents, newest first
func (r *documentRepository) GetAll(ctx context.Context) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Document, 0, len(r.order))
	// Prepended ids come first, so walk the order slice directly
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

// GetByID returns one document by id
func (r *documentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return &doc, nil
}

// Create inserts a new document at the front of the list
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[doc.ID]; exists {
		return fmt.Errorf("document %s already exists", doc.ID)
	}

	r.docs[doc.ID] = *doc
	r.order = append([]string{doc.ID}, r.order...)
	return nil
}

// UpdateStatus changes the processing status of a document
func (r *documentRepository) UpdateStatus(ctx context.Context, id string, status models.DocumentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return fmt.Errorf("document %s not found", id)
	}

	doc.Status = status
	r.docs[id] = doc
	return nil
}
