package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIClient talks to the SentimentScope backend. It returns raw response
// bodies; shaping them into view types is the normalizer's job. Failed
// requests are never retried: a submit either resolves or errors once.
type APIClient struct {
	baseURL string
	Client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: DEFAULT_TIMEOUT,
		},
	}
}

// APIError carries a non-2xx response. Detail holds the backend's
// `detail` string when the body had one; it is surfaced to the user
// verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (c *APIClient) AnalyzeText(ctx context.Context, text string) ([]byte, error) {
	return c.postJSON(ctx, "/analyze/text", map[string]string{"text": text})
}

func (c *APIClient) AnalyzeBulk(ctx context.Context, texts []string) ([]byte, error) {
	return c.postJSON(ctx, "/analyze/bulk", map[string][]string{"texts": texts})
}

func (c *APIClient) AnalyzeURL(ctx context.Context, target string) ([]byte, error) {
	return c.postJSON(ctx, "/analyze/url", map[string]string{"url": target})
}

func (c *APIClient) Stats(ctx context.Context) ([]byte, error) {
	return c.getJSON(ctx, "/stats")
}

func (c *APIClient) History(ctx context.Context, limit int) ([]byte, error) {
	return c.getJSON(ctx, fmt.Sprintf("/history?limit=%d", limit))
}

// Ping probes the API root. Used by the backend health monitor only.
func (c *APIClient) Ping(ctx context.Context) error {
	_, err := c.getJSON(ctx, "/")
	return err
}

func (c *APIClient) postJSON(ctx context.Context, path string, input any) ([]byte, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	return c.do(req)
}

func (c *APIClient) getJSON(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	return c.do(req)
}

func (c *APIClient) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		slog.Error("[APIClient] Request failed",
			slog.String("endpoint", req.URL.Path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[APIClient] Failed to read response",
			slog.String("endpoint", req.URL.Path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("[APIClient] Non-2xx response",
			slog.String("endpoint", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)))
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: detailFromBody(respBody)}
	}

	slog.Info("[APIClient] Request successful",
		slog.String("endpoint", req.URL.Path),
		slog.Duration("elapsed", time.Since(start)))
	return respBody, nil
}

func (c *APIClient) endpoint(path string) string {
	return c.baseURL + API_BASE_PATH + path
}

func detailFromBody(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

// BaseURLValid reports whether the configured base URL parses as an
// absolute http(s) URL. Checked once at startup so a typo fails fast
// instead of erroring on every submit.
func BaseURLValid(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
