package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/jotsync/internal/client/models"
)

// DefaultRequestTimeout bounds every request when the caller does not
// configure a tighter transport timeout.
const DefaultRequestTimeout = 10 * time.Second

// HTTPClient implements Client against a PostgREST-style endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewHTTPClient returns a client for the given base URL and API key. A
// non-positive timeout falls back to DefaultRequestTimeout.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, rawURL, userId string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	// The key doubles as the authorization credential; the owner id rides
	// along as an explicit scoping header.
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("x-user-id", userId)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}
	return data, nil
}

// FetchLatest asks for the owner's newest record by updated_at.
func (c *HTTPClient) FetchLatest(ctx context.Context, userId string) (*models.Note, error) {
	rawURL := fmt.Sprintf("%s/rest/v1/notes?user_id=eq.%s&order=updated_at.desc&limit=1",
		c.baseURL, url.QueryEscape(userId))

	req, err := c.newRequest(ctx, http.MethodGet, rawURL, userId, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return &notes[0], nil
}

// Insert creates the owner's first record.
func (c *HTTPClient) Insert(ctx context.Context, note *models.Note) error {
	return c.post(ctx, c.baseURL+"/rest/v1/notes", note, nil)
}

// Upsert replaces the record sharing the note's id, inserting when absent.
func (c *HTTPClient) Upsert(ctx context.Context, note *models.Note) error {
	return c.post(ctx, c.baseURL+"/rest/v1/notes?on_conflict=id", note, map[string]string{
		"Prefer": "resolution=merge-duplicates",
	})
}

func (c *HTTPClient) post(ctx context.Context, rawURL string, note *models.Note, headers map[string]string) error {
	body, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("%w: encoding note: %v", ErrDecode, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, rawURL, note.UserId, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	_, err = c.do(req)
	return err
}
