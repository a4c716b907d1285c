package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// DocumentRepository is the interface that wraps document metadata access
type DocumentRepository interface {
	// Method GetAll returns all documents, newest first.
	GetAll(ctx context.Context) ([]models.Document, error)
	// Method GetByID returns one document by id.
	//
	// If no document with such id exists, an error is returned.
	GetByID(ctx context.Context, id string) (*models.Document, error)
	// Method Create inserts a new document.
	Create(ctx context.Context, doc *models.Document) error
	// Method UpdateStatus changes the processing status of a document.
	UpdateStatus(ctx context.Context, id string, status models.DocumentStatus) error
}

// documentService manages the admin document dashboard.
//
// Document processing itself is a stub collaborator: uploads are
// registered as processing and flipped to processed after a simulated
// delay.
type documentService struct {
	repo            DocumentRepository
	logger          *zap.Logger
	processingDelay time.Duration
	pollInterval    time.Duration
}

// NewDocumentService creates a new document service
func NewDocumentService(repo DocumentRepository, logger *zap.Logger, processingDelay, pollInterval time.Duration) *documentService {
	return &documentService{
		repo:            repo,
		logger:          logger,
		processingDelay: processingDelay,
		pollInterval:    pollInterval,
	}
}

// List returns all document metadata
func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	return s.repo.GetAll(ctx)
}

// Get returns one document by id
func (s *documentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.repo.GetByID(ctx, id)
}

// Upload registers a new document in processing status and schedules the
// simulated processing completion.
func (s *documentService) Upload(ctx context.Context, filename string, size int64) (*models.Document, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	doc := &models.Document{
		ID:         uuid.New().String(),
		Title:      filename,
		Type:       documentType(filename),
		Size:       fmt.Sprintf("%.1f MB", float64(size)/(1024*1024)),
		Status:     models.StatusProcessing,
		UploadedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to register document: %w", err)
	}

	s.logger.Info("document registered", zap.String("id", doc.ID), zap.String("title", doc.Title))

	// Stand-in for the real processing pipeline: mark processed after a
	// fixed delay, detached from the request lifetime.
	docID := doc.ID
	time.AfterFunc(s.processingDelay, func() {
		if err := s.repo.UpdateStatus(context.Background(), docID, models.StatusProcessed); err != nil {
			s.logger.Warn("failed to mark document processed", zap.String("id", docID), zap.Error(err))
		}
	})

	// Watch the document until it reaches a terminal status. The watcher
	// self-terminates once the status leaves processing.
	NewStatusWatcher(s.repo, docID, s.pollInterval, s.logger, func(status models.DocumentStatus) {
		s.logger.Info("document processing finished",
			zap.String("id", docID),
			zap.String("status", string(status)),
		)
	}).Start()

	return doc, nil
}

// documentType derives the dashboard type label from the filename
func documentType(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "Unknown"
	}
	return strings.ToUpper(ext)
}
