package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/codingnoodle/speaker-tracker/client/internal/notion"
)

// Option configures a Client during construction in New.
//
// Options must be deterministic and side-effect free; they are applied in
// order before the transport is built.
type Option func(*Client) error

// WithBaseURL points the repository at a different API endpoint, typically
// an httptest server. The default is the production Notion endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base url must not be empty")
		}
		c.notionOpts = append(c.notionOpts, notion.WithBaseURL(u))
		return nil
	}
}

// WithHTTPTimeout sets the per-request timeout used by the repository.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.notionOpts = append(c.notionOpts, notion.WithTimeout(d))
		return nil
	}
}

// WithLogger routes the repository's structured logs to the given logger.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging dumps each HTTP request and response to the global
// logger when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Authorization header and full record payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}
