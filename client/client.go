// Package client is the speaker repository SDK. It stores and retrieves
// conference speaker candidates in a Notion database, exposing a typed API
// over the remote property payloads.
package client

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/codingnoodle/speaker-tracker/client/internal/notion"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a repository of speaker records backed by one Notion database.
// Safe for concurrent use. Operations never retry; callers own retry policy.
type Client struct {
	databaseID string
	notion     *notion.Client
	log        zerolog.Logger

	notionOpts []notion.Option
	debug      bool
}

// New constructs a Client with the given integration token and database id.
// Both are required and checked here so that misconfiguration fails at
// startup instead of on first use. Additional knobs come in via options.
func New(apiKey, databaseID string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: notion api key is required", ErrValidation)
	}
	if databaseID == "" {
		return nil, fmt.Errorf("%w: notion database id is required", ErrValidation)
	}

	c := &Client{
		databaseID: databaseID,
		log:        zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.debug {
		c.notionOpts = append(c.notionOpts, notion.WithTransport(&debugTransport{base: http.DefaultTransport}))
	}
	c.notion = notion.New(apiKey, c.notionOpts...)

	return c, nil
}

// DatabaseID returns the id of the database this repository operates on.
func (c *Client) DatabaseID() string { return c.databaseID }
