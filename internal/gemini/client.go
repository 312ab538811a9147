// Package gemini implements the client for the generateContent endpoint of
// the Google generative-language API. The API is treated as an opaque
// dependency: it accepts a text prompt plus optional inline media bytes and
// returns free-form text.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default generative-language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the multimodal model used when config does not
	// override it.
	DefaultModel = "gemini-1.5-flash"

	// DefaultTimeout is the default HTTP client timeout. Media requests
	// carry megabytes of inline payload, so this is deliberately generous.
	DefaultTimeout = 60 * time.Second
)

// ErrEmptyResponse is returned when the API answers 200 but carries no
// candidate text.
var ErrEmptyResponse = errors.New("empty response from model")

// Blob is an inline media attachment.
type Blob struct {
	// MIMEType is the media content type, e.g. "image/jpeg".
	MIMEType string

	// Data holds the raw bytes; the client base64-encodes them on the wire.
	Data []byte
}

// Client calls the generateContent API for a single model.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for configuring Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL, primarily for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithModel sets the model identifier used in the request path.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a Client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends the prompt, with an optional inline attachment, and
// returns the text of the first candidate. One round trip, no retry.
func (c *Client) GenerateContent(ctx context.Context, prompt string, inline *Blob) (string, error) {
	parts := []part{{Text: prompt}}
	if inline != nil {
		parts = append(parts, part{
			InlineData: &inlineData{
				MIMEType: inline.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(inline.Data),
			},
		})
	}

	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: parts}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generateContent request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute generateContent request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generateContent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", parseAPIError(resp.StatusCode, respBody)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal generateContent response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// parseAPIError turns a non-200 reply into an *APIError, preserving the
// Gemini error envelope when present.
func parseAPIError(statusCode int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Status:     envelope.Error.Status,
			Message:    envelope.Error.Message,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// APIError is a non-200 reply from the generative-language API.
type APIError struct {
	// StatusCode is the HTTP status of the reply.
	StatusCode int

	// Status is the Gemini status string, e.g. "RESOURCE_EXHAUSTED".
	Status string

	// Message is the human-readable error message from the envelope.
	Message string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini API error [%d %s]: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini API error [%d]: %s", e.StatusCode, e.Message)
}
