package figma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"time"
)

// Version is the current figma-tokens release.
const Version = "0.2.0"

// DefaultBaseURL is the Figma REST API root.
const DefaultBaseURL = "https://api.figma.com/v1"

// RetryBaseDelay is the backoff unit between GetFile attempts: attempt n
// waits n*RetryBaseDelay. Tests lower it to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// Client talks to the Figma REST API.
type Client struct {
	accessToken string
	baseURL     string
	maxRetries  int
	httpClient  *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at another API root, e.g. an httptest server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxRetries sets how many attempts GetFile makes before giving up.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// NewClient creates a Figma API client authenticated with a personal access token.
// Large files can take minutes to render server-side, hence the long timeout.
func NewClient(accessToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// HTTP/2 streams get reset on very large file payloads.
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     DefaultBaseURL,
		maxRetries:  defaultMaxRetries,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is returned when the API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether the request is worth retrying.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

var (
	// Anchored so that look-alike hosts cannot smuggle a key through.
	fileURLPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:[/?#]|$)`)
	fileKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// ExtractFileKey extracts the file key from a Figma URL such as
// https://www.figma.com/design/ABC123/Design-Name.
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileURLPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// ResolveFileKey accepts either a bare file key or a Figma file URL and
// returns the file key.
func ResolveFileKey(fileOrURL string) (string, error) {
	if fileKeyPattern.MatchString(fileOrURL) {
		return fileOrURL, nil
	}

	return ExtractFileKey(fileOrURL)
}

// GetFile retrieves the document tree of a file. Rate limits (429) and
// server errors (5xx) are retried with linear backoff; cancelling ctx
// aborts both the request and any pending backoff.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	url := fmt.Sprintf("%s/files/%s", c.baseURL, fileKey)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		body, err := c.get(ctx, url)
		if err == nil {
			var fileResp FileResponse
			if err := json.Unmarshal(body, &fileResp); err != nil {
				return nil, fmt.Errorf("failed to parse response: %w", err)
			}
			return &fileResp, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
		if apiErr, ok := err.(*APIError); ok && !apiErr.Temporary() {
			return nil, lastErr
		}

		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * RetryBaseDelay):
			}
		}
	}

	return nil, lastErr
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// DecodeFile decodes an exported document. Both the full file payload
// ({"name": ..., "document": {...}}) and a bare document node are accepted.
func DecodeFile(r io.Reader) (*FileResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var probe struct {
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	var fileResp FileResponse
	if len(bytes.TrimSpace(probe.Document)) > 0 {
		err = json.Unmarshal(data, &fileResp)
	} else {
		err = json.Unmarshal(data, &fileResp.Document)
		fileResp.Name = fileResp.Document.Name
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &fileResp, nil
}

// ReadFile decodes an exported document from disk.
func ReadFile(path string) (*FileResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fileResp, err := DecodeFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fileResp, nil
}
