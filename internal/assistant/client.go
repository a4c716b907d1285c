// Package assistant talks to the remote prediction endpoint and
// post-processes its free-form output.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
)

// Canned user-facing fallbacks for upstream failures
const (
	errorReplyFormat = "Sorry, I encountered an error: %s. Please try again later."
	emptyReply       = "I couldn't generate a response. Please try again."
)

// Client sends questions to the remote prediction endpoint.
// It is stateless per call; conversation history is supplied by the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a prediction endpoint client.
// No request timeout is set beyond the transport default.
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Send posts the question plus optional history and returns the reply text.
//
// Send fails soft: transport errors, non-2xx statuses and replies without
// a text field all produce a user-facing string, never an error. A single
// attempt is made per call.
func (c *Client) Send(ctx context.Context, question string, history []models.ConversationTurn) string {
	reqBody := models.PredictionRequest{
		Question: question,
		History:  history,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("failed to marshal prediction request", zap.Error(err))
		return fmt.Sprintf(errorReplyFormat, err.Error())
	}

	body, status, err := c.post(ctx, payload)
	if err != nil {
		c.logger.Error("prediction request failed", zap.Error(err))
		return fmt.Sprintf(errorReplyFormat, err.Error())
	}

	if status < 200 || status >= 300 {
		msg := upstreamErrorMessage(body, status)
		c.logger.Warn("prediction endpoint returned error",
			zap.Int("status", status),
			zap.String("message", msg),
		)
		return fmt.Sprintf(errorReplyFormat, msg)
	}

	var result models.PredictionResponse
	if err := json.Unmarshal(body, &result); err != nil || result.Text == "" {
		c.logger.Warn("prediction response missing text field", zap.Error(err))
		return emptyReply
	}

	return result.Text
}

// Forward relays a raw request body to the prediction endpoint and
// returns the upstream response bytes and status. Used by the proxy
// endpoint, which passes payloads through untouched.
func (c *Client) Forward(ctx context.Context, payload []byte) ([]byte, int, error) {
	return c.post(ctx, payload)
}

// post issues one POST to the prediction endpoint
func (c *Client) post(ctx context.Context, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build prediction request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to call prediction endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read prediction response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// upstreamErrorMessage pulls a message field out of an upstream error
// body, falling back to the HTTP status
func upstreamErrorMessage(body []byte, status int) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return fmt.Sprintf("Error: %d", status)
}
