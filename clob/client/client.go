// Package client implements the CLOB REST client: markets, prices, order
// placement and cancellation, API-key management and balances.
package client

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/roushou/polyte/clob/account"
	"github.com/roushou/polyte/clob/types"
	"github.com/roushou/polyte/pkg/cache"
	"github.com/roushou/polyte/pkg/logger"
	"github.com/roushou/polyte/pkg/ratelimit"
)

// DefaultHost is the production CLOB endpoint.
const DefaultHost = "https://clob.polymarket.com"

// metaTTL bounds how long tick sizes and neg-risk flags are reused before
// being re-fetched. Tick sizes can change while a market trades.
const metaTTL = 10 * time.Minute

// marketMeta is the per-token exchange state an order build needs.
type marketMeta struct {
	tick    types.TickSize
	negRisk bool
}

// Client talks to the CLOB REST API. A client without an account can call
// public endpoints only; L1/L2 endpoints fail with an authentication error.
type Client struct {
	host    string
	chainID types.Chain
	account *account.Account
	http    *resty.Client
	log     *logrus.Entry
	meta    *cache.TTL[string, marketMeta]
	limits  *ratelimit.Set
}

// Option customizes a Client.
type Option func(*Client)

// WithHost overrides the CLOB host, mainly for the Amoy testnet and tests.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = strings.TrimSuffix(host, "/")
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithLogger overrides the client's log entry.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRateLimit throttles requests to the exchange's published per-endpoint
// budgets. Off by default; the server still answers 429 with Retry-After,
// which the transport honors either way.
func WithRateLimit() Option {
	return func(c *Client) {
		c.limits = ratelimit.DefaultSet()
	}
}

// New builds an authenticated client. The account may carry API credentials
// (full L2 access) or just a wallet (orders can be signed, L2 queries fail
// until credentials are derived).
func New(chainID types.Chain, acct *account.Account, opts ...Option) *Client {
	c := &Client{
		host:    DefaultHost,
		chainID: chainID,
		account: acct,
		log:     logger.New("clob"),
		meta:    cache.NewTTL[string, marketMeta](metaTTL),
	}

	// resty picks up HTTP_PROXY / HTTPS_PROXY from the environment on its own.
	c.http = resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			if resp.StatusCode() == 429 {
				if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
					if d, err := time.ParseDuration(retryAfter + "s"); err == nil {
						return d, nil
					}
				}
				return 10 * time.Second, nil
			}
			return 0, nil
		})

	for _, opt := range opts {
		opt(c)
	}
	c.http.SetBaseURL(c.host)
	return c
}

// NewPublic builds a read-only client with no signing capability.
func NewPublic(chainID types.Chain, opts ...Option) *Client {
	return New(chainID, nil, opts...)
}

// Host returns the configured CLOB host.
func (c *Client) Host() string {
	return c.host
}

// ChainID returns the chain the client signs for.
func (c *Client) ChainID() types.Chain {
	return c.chainID
}

// Account returns the attached account, nil for public clients.
func (c *Client) Account() *account.Account {
	return c.account
}
