// Package gamma wraps the Gamma metadata API: market and event discovery,
// tags and series. Gamma is unauthenticated and read-only.
package gamma

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/roushou/polyte/clob/types"
)

// DefaultHost is the production Gamma endpoint.
const DefaultHost = "https://gamma-api.polymarket.com"

// Client talks to the Gamma API.
type Client struct {
	host string
	http *resty.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHost overrides the Gamma host, mainly for tests.
func WithHost(host string) Option {
	return func(c *Client) { c.host = strings.TrimSuffix(host, "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New builds a Gamma client.
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

// get runs a GET request and decodes the 2xx response into out.
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

// pagination is shared by the list param types.
type pagination struct {
	Limit     int
	Offset    int
	Order     string // comma-separated sort fields
	Ascending bool
}

func (p *pagination) apply(q url.Values) {
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Order != "" {
		q.Set("order", p.Order)
		q.Set("ascending", strconv.FormatBool(p.Ascending))
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

// Bool is a helper for the optional boolean filters.
func Bool(v bool) *bool { return &v }
