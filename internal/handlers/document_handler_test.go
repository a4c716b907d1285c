package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/questscholar/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockDocumentService is a mock implementation of DocumentService
type mockDocumentService struct {
	docs         []models.Document
	doc          *models.Document
	getErr       error
	uploaded     *models.Document
	uploadErr    error
	lastFilename string
	lastSize     int64
}

func (m *mockDocumentService) List(ctx context.Context) ([]models.Document, error) {
	return m.docs, nil
}

func (m *mockDocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.doc, nil
}

func (m *mockDocumentService) Upload(ctx context.Context, filename string, size int64) (*models.Document, error) {
	m.lastFilename = filename
	m.lastSize = size
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return m.uploaded, nil
}

func setupDocumentTest(svc DocumentService) chi.Router {
	handler := NewDocumentHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestDocumentHandler_List(t *testing.T) {
	svc := &mockDocumentService{
		docs: []models.Document{
			{ID: "1", Title: "Advanced Mathematics Textbook", Type: "PDF", Status: models.StatusProcessed},
			{ID: "2", Title: "Physics Lecture Notes", Type: "PDF", Status: models.StatusProcessed},
		},
	}
	router := setupDocumentTest(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var docs []models.Document
	require.NoError(t, json.NewDecoder(w.Body).Decode(&docs))
	assert.Equal(t, svc.docs, docs)
}

func TestDocumentHandler_Status(t *testing.T) {
	tests := []struct {
		name           string
		svc            *mockDocumentService
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name: "processing document",
			svc: &mockDocumentService{
				doc: &models.Document{ID: "3", Status: models.StatusProcessing},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]string{"id": "3", "status": "processing"},
		},
		{
			name:           "not found",
			svc:            &mockDocumentService{getErr: fmt.Errorf("document 99 not found")},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupDocumentTest(tt.svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/3/status", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var body map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDocumentHandler_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockDocumentService{
			uploaded: &models.Document{
				ID:         "generated-id",
				Title:      "notes.pdf",
				Type:       "PDF",
				Status:     models.StatusProcessing,
				UploadedAt: time.Now(),
			},
		}
		router := setupDocumentTest(svc)

		body, contentType := multipartBody(t, "file", "notes.pdf", "file contents")
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "notes.pdf", svc.lastFilename)
		assert.Equal(t, int64(len("file contents")), svc.lastSize)

		var doc models.Document
		require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))
		assert.Equal(t, models.StatusProcessing, doc.Status)
	})

	t.Run("missing file field", func(t *testing.T) {
		router := setupDocumentTest(&mockDocumentService{})

		body, contentType := multipartBody(t, "attachment", "notes.pdf", "file contents")
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		router := setupDocumentTest(&mockDocumentService{})

		req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("plain body"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentHandler_Query(t *testing.T) {
	router := setupDocumentTest(&mockDocumentService{})

	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewBufferString(`{"question":"What is calculus?"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "This is a simulated answer from the document knowledge base.", resp["answer"])
	assert.Equal(t, "Advanced Mathematics Textbook", resp["sources"])
}
