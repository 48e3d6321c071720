package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"supatools/pkg/config"
)

// Client talks to the PostgREST and auth endpoints of one project using its
// public (anon) key.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

func New(creds config.Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
		BaseURL:    strings.TrimRight(strings.TrimSpace(creds.URL), "/"),
		APIKey:     strings.TrimSpace(creds.AnonKey),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Select reads at most limit rows of the given columns from table.
func (c *Client) Select(ctx context.Context, table, columns string, limit int) ([]json.RawMessage, error) {
	if columns == "" {
		columns = "*"
	}
	q := url.Values{}
	q.Set("select", columns)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var rows []json.RawMessage
	if _, err := c.doJSON(ctx, http.MethodGet, "/rest/v1/"+url.PathEscape(table)+"?"+q.Encode(), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RPC calls a Postgres function exposed by PostgREST. out may be nil.
func (c *Client) RPC(ctx context.Context, fn string, args any, out any) error {
	if args == nil {
		args = map[string]any{}
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/rest/v1/rpc/"+url.PathEscape(fn), args, out)
	return err
}

// AuthSettings fetches the public auth settings, which is enough to tell
// whether the auth service answers for this key.
func (c *Client) AuthSettings(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if _, err := c.doJSON(ctx, http.MethodGet, "/auth/v1/settings", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, reqBody any, respBody any) (int, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.BaseURL == "" || c.APIKey == "" {
		return 0, config.ErrMissingCredentials
	}

	var body io.Reader
	if reqBody != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return 0, err
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, decodeError(resp.StatusCode, b)
	}

	if respBody != nil && len(bytes.TrimSpace(b)) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			return resp.StatusCode, fmt.Errorf("decode supabase response failed: %w body=%s", err, string(b))
		}
	}

	return resp.StatusCode, nil
}
