package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Client talks to the PostgREST and GoTrue endpoints of a Supabase project.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// Error is returned for any response with a 4xx/5xx status.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        strings.TrimRight(url, "/"),
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Query executes a filtered select on a table.
// Values in query are PostgREST operators, e.g. "user_id": "eq.<id>".
func (c *Client) Query(ctx context.Context, table string, query map[string]interface{}) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(table), nil)
	if err != nil {
		return nil, err
	}
	setQuery(req, query)

	body, _, err := c.do(req)
	return body, err
}

// Count returns the exact number of rows matching query without fetching them.
func (c *Client) Count(ctx context.Context, table string, query map[string]interface{}) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodHead, c.tableURL(table), nil)
	if err != nil {
		return 0, err
	}
	setQuery(req, query)
	req.Header.Set("Prefer", "count=exact")

	_, header, err := c.do(req)
	if err != nil {
		return 0, err
	}

	// Content-Range: 0-24/3573 or */0
	contentRange := header.Get("Content-Range")
	idx := strings.LastIndex(contentRange, "/")
	if idx < 0 {
		return 0, fmt.Errorf("supabase: missing count in content-range %q", contentRange)
	}
	total, err := strconv.ParseInt(contentRange[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("supabase: invalid content-range %q: %w", contentRange, err)
	}
	return total, nil
}

// Insert inserts one record (or a slice of records) and returns the representation.
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.tableURL(table), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	body, _, err := c.do(req)
	return body, err
}

// Upsert inserts or updates a record in a Supabase table
// onConflict specifies the columns to detect conflicts (e.g., "user_id")
func (c *Client) Upsert(ctx context.Context, table string, data interface{}, onConflict string) ([]byte, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.tableURL(table), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation,resolution=merge-duplicates")
	setQuery(req, map[string]interface{}{"on_conflict": onConflict})

	body, _, err := c.do(req)
	return body, err
}

// UpdateWhere patches every row matching query.
func (c *Client) UpdateWhere(ctx context.Context, table string, query map[string]interface{}, data interface{}) ([]byte, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPatch, c.tableURL(table), data)
	if err != nil {
		return nil, err
	}
	setQuery(req, query)
	req.Header.Set("Prefer", "return=representation")

	body, _, err := c.do(req)
	return body, err
}

// DeleteWhere deletes records matching a query
func (c *Client) DeleteWhere(ctx context.Context, table string, query map[string]interface{}) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.tableURL(table), nil)
	if err != nil {
		return err
	}
	setQuery(req, query)

	_, _, err = c.do(req)
	return err
}

// RPC calls a Postgres function exposed under /rest/v1/rpc.
func (c *Client) RPC(ctx context.Context, function string, params interface{}) ([]byte, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/rest/v1/rpc/%s", c.URL, function), params)
	if err != nil {
		return nil, err
	}

	body, _, err := c.do(req)
	return body, err
}

// VerifyToken verifies a JWT token with Supabase
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/auth/v1/user", c.URL), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, _, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}

// User represents a Supabase user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, rawURL string, data interface{}) (*http.Request, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := c.newRequest(ctx, method, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, http.Header, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, resp.Header, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, resp.Header, nil
}

func setQuery(req *http.Request, query map[string]interface{}) {
	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()
}
