package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient struct handles all communication with the posts API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a client for the API at baseURL. A zero timeout means none.
func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// do is the single, unified helper for making JSON API requests.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}
