// Package data wraps the Data API: positions, trade history, activity,
// holders and open interest. Like Gamma it is unauthenticated and read-only.
package data

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/roushou/polyte/clob/types"
)

// DefaultHost is the production Data API endpoint.
const DefaultHost = "https://data-api.polymarket.com"

// Client talks to the Data API.
type Client struct {
	host string
	http *resty.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHost overrides the Data API host, mainly for tests.
func WithHost(host string) Option {
	return func(c *Client) { c.host = strings.TrimSuffix(host, "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New builds a Data API client.
func New(opts ...Option) *Client {
	c := &Client{host: DefaultHost}
	c.http = resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second)

	for _, opt := range opts {
		opt(c)
	}
	c.http.SetBaseURL(c.host)
	return c
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return types.WrapError(types.KindTransport, err, "GET "+endpoint)
	}
	if !resp.IsSuccess() {
		return types.Errorf(types.KindValidation, "GET %s: %d %s", endpoint, resp.StatusCode(), resp.Body())
	}
	return nil
}
