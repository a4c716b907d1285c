package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/questscholar/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_SeededData(t *testing.T) {
	repo := NewDocumentRepository()

	docs, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 8)

	assert.Equal(t, "Advanced Mathematics Textbook", docs[0].Title)
	assert.Equal(t, models.StatusProcessed, docs[0].Status)

	// The seed set includes every status the dashboard renders
	statuses := make(map[models.DocumentStatus]int)
	for _, doc := range docs {
		statuses[doc.Status]++
	}
	assert.Equal(t, 6, statuses[models.StatusProcessed])
	assert.Equal(t, 1, statuses[models.StatusProcessing])
	assert.Equal(t, 1, statuses[models.StatusFailed])
}

func TestDocumentRepository_CreatePrepends(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	doc := &models.Document{
		ID:         "new-doc",
		Title:      "Fresh Upload",
		Type:       "PDF",
		Size:       "1.0 MB",
		Status:     models.StatusProcessing,
		UploadedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, doc))

	docs, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 9)
	assert.Equal(t, "new-doc", docs[0].ID)

	// Duplicate ids are rejected
	assert.Error(t, repo.Create(ctx, doc))
}

func TestDocumentRepository_GetByID(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	doc, err := repo.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Literary Criticism Essays", doc.Title)
	assert.Equal(t, models.StatusProcessing, doc.Status)

	_, err = repo.GetByID(ctx, "missing")
	assert.Error(t, err)
}

func TestDocumentRepository_UpdateStatus(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	require.NoError(t, repo.UpdateStatus(ctx, "3", models.StatusProcessed))

	doc, err := repo.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessed, doc.Status)

	assert.Error(t, repo.UpdateStatus(ctx, "missing", models.StatusProcessed))
}
