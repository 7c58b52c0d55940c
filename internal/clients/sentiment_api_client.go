package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/sentiview/internal/models"
)

// StatusError is returned when the sentiment API answers with anything but 200.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status code %d", e.Endpoint, e.StatusCode)
}

// SentimentAPIClient talks to the external classification service. Requests
// are issued once; there is no retry.
type SentimentAPIClient struct {
	Client  *http.Client
	BaseURL string
}

func NewSentimentAPIClient(baseURL string, timeout time.Duration) *SentimentAPIClient {
	slog.Info("[SentimentAPIClient] Initializing Client",
		slog.String("base_url", baseURL),
		slog.Duration("timeout", timeout))

	return &SentimentAPIClient{
		Client: &http.Client{
			Timeout: timeout,
		},
		BaseURL: baseURL,
	}
}

// Health returns the status code of GET /health. A non-nil error means the
// request never got an answer.
func (s *SentimentAPIClient) Health(ctx context.Context) (int, error) {
	endpoint := s.BaseURL + HEALTH_PATH
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := s.Client.Do(req)
	if err != nil {
		slog.Warn("[SentimentAPIClient] Health request failed",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (s *SentimentAPIClient) Predict(ctx context.Context, text string) (models.PredictionResult, error) {
	var result models.PredictionResult
	slog.Info("[SentimentAPIClient] Requesting prediction from sentiment service")
	start := time.Now()

	err := s.postJSON(ctx, PREDICT_PATH, models.TextRequest{Text: text}, &result)
	if err != nil {
		slog.Error("[SentimentAPIClient] Prediction request failed",
			slog.Duration("elapsed", time.Since(start)))
		return result, err
	}

	slog.Info("[SentimentAPIClient] Prediction request successful",
		slog.String("sentiment", result.Sentiment),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (s *SentimentAPIClient) Explain(ctx context.Context, text string) (models.ExplanationResult, error) {
	var result models.ExplanationResult
	slog.Info("[SentimentAPIClient] Requesting explanation from sentiment service")
	start := time.Now()

	err := s.postJSON(ctx, EXPLAIN_PATH, models.TextRequest{Text: text}, &result)
	if err != nil {
		slog.Error("[SentimentAPIClient] Explanation request failed",
			slog.Duration("elapsed", time.Since(start)))
		return result, err
	}

	slog.Info("[SentimentAPIClient] Explanation request successful",
		slog.Int("tokens", len(result.Explanation)),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (s *SentimentAPIClient) postJSON(ctx context.Context, path string, input interface{}, output interface{}) error {
	endpoint := s.BaseURL + path

	body, err := json.Marshal(input)
	if err != nil {
		slog.Error("[SentimentAPIClient] Failed to marshal input",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[SentimentAPIClient] Failed to build request",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := s.Client.Do(req)
	if err != nil {
		slog.Error("[SentimentAPIClient] Request failed",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		slog.Warn("[SentimentAPIClient] Unexpected status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode))
		return &StatusError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[SentimentAPIClient] Failed to read response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[SentimentAPIClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
