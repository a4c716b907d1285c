package services

import (
	"context"
	"sync"
	"time"

	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// StatusWatcher re-checks a document at a fixed interval until its status
// leaves processing, then invokes the callback and terminates itself.
//
// The caller owns the handle: Stop cancels the loop deterministically, so
// navigating away never leaks a timer. No backoff and no retry bound;
// the repository it polls is local.
type StatusWatcher struct {
	repo     DocumentRepository
	docID    string
	logger   *zap.Logger
	ticker   *time.Ticker
	stopChan chan struct{}
	stopOnce sync.Once
	onDone   func(models.DocumentStatus)
}

// NewStatusWatcher creates a watcher for one document
func NewStatusWatcher(repo DocumentRepository, docID string, interval time.Duration, logger *zap.Logger, onDone func(models.DocumentStatus)) *StatusWatcher {
	return &StatusWatcher{
		repo:     repo,
		docID:    docID,
		logger:   logger,
		ticker:   time.NewTicker(interval),
		stopChan: make(chan struct{}),
		onDone:   onDone,
	}
}

// Start starts the polling loop
func (w *StatusWatcher) Start() {
	w.logger.Debug("status watcher started", zap.String("document_id", w.docID))
	go w.run()
}

// Stop cancels the polling loop. Safe to call more than once, and safe
// to call after the watcher terminated on its own.
func (w *StatusWatcher) Stop() {
	w.stopOnce.Do(func() {
		w.ticker.Stop()
		close(w.stopChan)
		w.logger.Debug("status watcher stopped", zap.String("document_id", w.docID))
	})
}

// run executes the polling loop
func (w *StatusWatcher) run() {
	ctx := context.Background()

	// Check immediately on start
	if w.check(ctx) {
		return
	}

	for {
		select {
		case <-w.ticker.C:
			if w.check(ctx) {
				return
			}
		case <-w.stopChan:
			return
		}
	}
}

// check polls the document once; returns true when the loop should end
func (w *StatusWatcher) check(ctx context.Context) bool {
	doc, err := w.repo.GetByID(ctx, w.docID)
	if err != nil {
		w.logger.Warn("status watcher poll failed", zap.String("document_id", w.docID), zap.Error(err))
		// A vanished document will not start processing again
		w.Stop()
		return true
	}

	if doc.Status == models.StatusProcessing {
		return false
	}

	if w.onDone != nil {
		w.onDone(doc.Status)
	}
	w.Stop()
	return true
}
