// Package notion is a minimal Notion API client covering the pages and
// databases endpoints a speaker database needs. It is not a general SDK;
// unsupported property kinds and endpoints are omitted on purpose.
package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.notion.com"

const defaultTimeout = 30 * time.Second

// Client talks to the Notion REST API. Safe for concurrent use.
type Client struct {
	rc *resty.Client
}

// Option adjusts client construction.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint, typically a test
// server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.rc.SetBaseURL(strings.TrimRight(u, "/")) }
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// WithTransport replaces the underlying HTTP transport, used to install a
// debug round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.rc.SetTransport(rt) }
}

// New builds a client authenticating with the given integration token.
func New(token string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Notion-Version", Version).
		SetAuthToken(token).
		SetTimeout(defaultTimeout)
	c := &Client{rc: rc}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CreatePage inserts a new row into the database with the given properties.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props map[string]PropertyValue) (*Page, error) {
	body := createPageRequest{Parent: Parent{DatabaseID: databaseID}, Properties: props}
	resp, err := c.rc.R().SetContext(ctx).SetBody(&body).Post("/v1/pages")
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create page: %w", newAPIError(resp))
	}
	var page Page
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("create page: decode response: %w", err)
	}
	return &page, nil
}

// GetPage retrieves a single page by id.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(fmt.Sprintf("/v1/pages/%s", pageID))
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get page: %w", newAPIError(resp))
	}
	var page Page
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("get page: decode response: %w", err)
	}
	return &page, nil
}

// UpdatePage patches the given properties, leaving all others untouched.
func (c *Client) UpdatePage(ctx context.Context, pageID string, props map[string]PropertyValue) (*Page, error) {
	body := updatePageRequest{Properties: props}
	resp, err := c.rc.R().SetContext(ctx).SetBody(&body).Patch(fmt.Sprintf("/v1/pages/%s", pageID))
	if err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("update page: %w", newAPIError(resp))
	}
	var page Page
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("update page: decode response: %w", err)
	}
	return &page, nil
}

// ArchivePage marks the page archived. Notion has no hard delete over the
// API; archived pages land in the workspace trash.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	archived := true
	body := updatePageRequest{Archived: &archived}
	resp, err := c.rc.R().SetContext(ctx).SetBody(&body).Patch(fmt.Sprintf("/v1/pages/%s", pageID))
	if err != nil {
		return fmt.Errorf("archive page: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("archive page: %w", newAPIError(resp))
	}
	return nil
}

// QueryDatabase fetches one result page. filter may be nil for an unfiltered
// scan, pageSize <= 0 leaves the server default, startCursor "" starts from
// the beginning.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter *Filter, pageSize int, startCursor string) (*QueryResult, error) {
	body := queryRequest{Filter: filter, StartCursor: startCursor}
	if pageSize > 0 {
		body.PageSize = pageSize
	}
	resp, err := c.rc.R().SetContext(ctx).SetBody(&body).Post(fmt.Sprintf("/v1/databases/%s/query", databaseID))
	if err != nil {
		return nil, fmt.Errorf("query database: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("query database: %w", newAPIError(resp))
	}
	var result QueryResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("query database: decode response: %w", err)
	}
	return &result, nil
}

// GetDatabase retrieves the database schema, including its title and the
// property table.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(fmt.Sprintf("/v1/databases/%s", databaseID))
	if err != nil {
		return nil, fmt.Errorf("get database: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get database: %w", newAPIError(resp))
	}
	var db Database
	if err := json.Unmarshal(resp.Body(), &db); err != nil {
		return nil, fmt.Errorf("get database: decode response: %w", err)
	}
	return &db, nil
}
