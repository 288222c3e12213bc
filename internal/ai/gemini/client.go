// internal/ai/gemini/client.go
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the default Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when the caller does not pick one.
	DefaultModel = "gemini-2.5-flash"
)

// Client is a thin Gemini GenerateContent client with a request timeout
// and exponential-backoff retry on transient failures.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
	retryDelay time.Duration
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		maxRetries: maxRetries,
		retryDelay: time.Second,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateContent sends one prompt and returns the concatenated text of
// the first candidate.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	// Format: /models/{model}:generateContent?key={api_key}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.executeWithRetry(ctx, httpReq, jsonData)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.handleAPIError(resp.StatusCode, body)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	var content string
	for _, part := range genResp.Candidates[0].Content.Parts {
		content += part.Text
	}
	if content == "" {
		return "", fmt.Errorf("no text content in Gemini response")
	}

	logrus.WithFields(logrus.Fields{
		"model":             c.model,
		"prompt_tokens":     genResp.UsageMetadata.PromptTokenCount,
		"completion_tokens": genResp.UsageMetadata.CandidatesTokenCount,
		"duration_ms":       time.Since(start).Milliseconds(),
	}).Info("Gemini response received")

	return content, nil
}

// executeWithRetry retries on network errors, 429 and 5xx with
// exponential backoff. Other client errors are returned to the caller
// immediately.
func (c *Client) executeWithRetry(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		reqClone := req.Clone(ctx)
		reqClone.Body = io.NopCloser(bytes.NewReader(body))

		resp, err := c.httpClient.Do(reqClone)
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}

		// Non-retryable client errors go straight back.
		if err == nil && resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			resp.Body.Close()
		}

		if attempt < c.maxRetries {
			delay := c.retryDelay * time.Duration(1<<uint(attempt))
			logrus.WithFields(logrus.Fields{
				"attempt":     attempt + 1,
				"max_retries": c.maxRetries,
				"delay_ms":    delay.Milliseconds(),
				"error":       lastErr.Error(),
			}).Warn("Gemini request failed, retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) handleAPIError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("Gemini API error: invalid or missing API key")
	case http.StatusTooManyRequests:
		return fmt.Errorf("Gemini API error: rate limit exceeded")
	case http.StatusBadRequest:
		return fmt.Errorf("Gemini API error: invalid request - %s", string(body))
	default:
		return fmt.Errorf("Gemini API error (status %d): %s", statusCode, string(body))
	}
}
