package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/questscholar/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockChatService is a mock implementation of ChatService
type mockChatService struct {
	reply     string
	history   []models.ConversationTurn
	lastMsg   string
	resetDone bool
}

func (m *mockChatService) SendMessage(ctx context.Context, message string) string {
	m.lastMsg = message
	return m.reply
}

func (m *mockChatService) History() []models.ConversationTurn {
	return m.history
}

func (m *mockChatService) Reset() {
	m.resetDone = true
}

// mockPredictionProxy is a mock implementation of PredictionProxy
type mockPredictionProxy struct {
	body    []byte
	status  int
	err     error
	payload []byte
}

func (m *mockPredictionProxy) Forward(ctx context.Context, payload []byte) ([]byte, int, error) {
	m.payload = payload
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.body, m.status, nil
}

func setupChatTest(chatService ChatService, proxy PredictionProxy) chi.Router {
	handler := NewChatHandler(chatService, proxy, zap.NewNop())
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestChatHandler_Chat(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		reply          string
		expectedStatus int
		expectedReply  string
	}{
		{
			name:           "success",
			body:           `{"message":"What is Go?"}`,
			reply:          "A language.",
			expectedStatus: http.StatusOK,
			expectedReply:  "A language.",
		},
		{
			name:           "apology reply is still 200",
			body:           `{"message":"hi"}`,
			reply:          "Sorry, I encountered an error: timeout. Please try again later.",
			expectedStatus: http.StatusOK,
			expectedReply:  "Sorry, I encountered an error: timeout. Please try again later.",
		},
		{
			name:           "empty message",
			body:           `{"message":"  "}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			body:           `nope`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockChatService{reply: tt.reply}
			router := setupChatTest(svc, &mockPredictionProxy{})

			req := httptest.NewRequest(http.MethodPost, "/chat/", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.ChatResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedReply, resp.Reply)
			}
		})
	}
}

func TestChatHandler_History(t *testing.T) {
	svc := &mockChatService{
		history: []models.ConversationTurn{
			{Role: models.TurnRoleUser, Content: "hi"},
			{Role: models.TurnRoleAssistant, Content: "hello"},
		},
	}
	router := setupChatTest(svc, &mockPredictionProxy{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/history", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var turns []models.ConversationTurn
	require.NoError(t, json.NewDecoder(w.Body).Decode(&turns))
	assert.Equal(t, svc.history, turns)
}

func TestChatHandler_History_Empty(t *testing.T) {
	router := setupChatTest(&mockChatService{}, &mockPredictionProxy{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/history", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestChatHandler_Reset(t *testing.T) {
	svc := &mockChatService{}
	router := setupChatTest(svc, &mockPredictionProxy{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat/reset", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.resetDone)
}

func TestChatHandler_Proxy(t *testing.T) {
	t.Run("relays upstream response", func(t *testing.T) {
		proxy := &mockPredictionProxy{
			body:   []byte(`{"text":"hello","chatId":"abc"}`),
			status: http.StatusOK,
		}
		router := setupChatTest(&mockChatService{}, proxy)

		req := httptest.NewRequest(http.MethodPost, "/flowise", bytes.NewBufferString(`{"question":"hi"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"text":"hello","chatId":"abc"}`, w.Body.String())
		assert.JSONEq(t, `{"question":"hi"}`, string(proxy.payload))
	})

	t.Run("upstream failure becomes 500 with message", func(t *testing.T) {
		proxy := &mockPredictionProxy{err: errors.New("connection refused")}
		router := setupChatTest(&mockChatService{}, proxy)

		req := httptest.NewRequest(http.MethodPost, "/flowise", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp["message"], "connection refused")
	})
}
