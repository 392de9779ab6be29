package notion

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

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL           = "https://api.notion.com"
	DefaultVersion           = "2022-06-28"
	DefaultRequestsPerSecond = 3.0

	maxPageSize     = 100
	maxResponseSize = 16 << 20
)

// Options configures a Client. Zero values fall back to the Notion defaults.
type Options struct {
	Token             string
	BaseURL           string
	Version           string
	RequestsPerSecond float64       // <= 0 disables pacing
	Timeout           time.Duration // per request, 0 means no timeout
	HTTPClient        *http.Client  // optional base client (transport is reused)
}

// Client talks to the Notion REST API. It is safe for concurrent use and is
// meant to be constructed once and shared.
type Client struct {
	httpClient *http.Client
	baseURL    string
	version    string
	limiter    *rate.Limiter
	timeout    time.Duration
}

func New(opts Options) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	var base http.RoundTripper
	if opts.HTTPClient != nil {
		base = opts.HTTPClient.Transport
	}

	// Integration tokens are plain bearer tokens
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
			Base:   base,
		},
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		version:    version,
		limiter:    limiter,
		timeout:    opts.Timeout,
	}
}

// QueryRequest is the body of a database query.
type QueryRequest struct {
	Filter      Filter `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type listResponse[T any] struct {
	Object     string  `json:"object"`
	Results    []T     `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

func (r listResponse[T]) cursor() string {
	if !r.HasMore || r.NextCursor == nil {
		return ""
	}
	return *r.NextCursor
}

// QueryDatabase runs a query against a database and follows pagination until
// every matching page has been read.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query QueryRequest) ([]Page, error) {
	path := "/v1/databases/" + url.PathEscape(databaseID) + "/query"
	query.PageSize = maxPageSize

	var pages []Page
	for {
		var resp listResponse[json.RawMessage]
		err := c.do(ctx, http.MethodPost, path, query, &resp)
		if err != nil {
			return nil, err
		}
		pages = append(pages, decodePages(ctx, resp.Results)...)

		next := resp.cursor()
		if next == "" {
			return pages, nil
		}
		query.StartCursor = next
	}
}

// decodePages decodes every result on its own and skips the ones that are
// not page objects, so a single bad row does not fail the whole query.
func decodePages(ctx context.Context, results []json.RawMessage) []Page {
	pages := make([]Page, 0, len(results))
	for i, msg := range results {
		var page Page
		err := json.Unmarshal(msg, &page)
		if err != nil {
			slog.WarnContext(ctx, "skipping undecodable notion page", "index", i, "error", err)
			continue
		}
		pages = append(pages, page)
	}
	return pages
}

// RetrievePage loads a single page by id.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	err := c.do(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(pageID), nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// BlockChildren returns all direct children of a block (or page), following
// pagination. Nested children are not loaded.
func (c *Client) BlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var blocks []Block
	cursor := ""
	for {
		params := url.Values{}
		params.Set("page_size", fmt.Sprint(maxPageSize))
		if cursor != "" {
			params.Set("start_cursor", cursor)
		}
		path := "/v1/blocks/" + url.PathEscape(blockID) + "/children?" + params.Encode()

		var resp listResponse[Block]
		err := c.do(ctx, http.MethodGet, path, nil, &resp)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, resp.Results...)

		cursor = resp.cursor()
		if cursor == "" {
			return blocks, nil
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := c.limiter.Wait(ctx)
	if err != nil {
		return fmt.Errorf("notion rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	err = json.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
