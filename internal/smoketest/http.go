package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// requestIDHeader matches the header the service echoes.
const requestIDHeader = "X-Request-ID"

// HTTPClient wraps http.Client with timeout and request tagging.
type HTTPClient struct {
	client *http.Client
	runID  string
}

func newHTTPClient(timeout time.Duration, runID string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
		runID:  runID,
	}
}

// Get performs a GET request tagged with the run id. The response must carry
// a request id.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(requestIDHeader, c.runID)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get(requestIDHeader) != c.runID {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: request id not echoed on %s", ErrUnexpected, url)
	}
	return resp, nil
}

// fetch performs a GET and returns status and body.
func (c *HTTPClient) fetch(ctx context.Context, url string) (int, []byte, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// fetchLegends GETs a legends route and decodes the records.
func (c *HTTPClient) fetchLegends(ctx context.Context, url string) ([]Record, error) {
	status, body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if status != StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrUnexpected, status, url)
	}
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrUnexpected, url, err)
	}
	return records, nil
}
