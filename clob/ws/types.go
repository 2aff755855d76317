// Package ws streams realtime CLOB events over WebSocket: order book state on
// the public market channel and order/trade lifecycle on the authenticated
// user channel.
package ws

import "time"

// Subscription URLs for the two channels.
const (
	MarketURL = "wss://ws-subscriptions-clob.polymarket.com/ws/market"
	UserURL   = "wss://ws-subscriptions-clob.polymarket.com/ws/user"
)

// DefaultPingInterval keeps the upstream from idling the connection out.
const DefaultPingInterval = 10 * time.Second

// Channel names used in subscribe frames.
const (
	channelMarket = "market"
	channelUser   = "user"
)

// Market channel event types.
const (
	EventTypeBook           = "book"
	EventTypePriceChange    = "price_change"
	EventTypeTickSizeChange = "tick_size_change"
	EventTypeLastTradePrice = "last_trade_price"
)

// User channel event types.
const (
	EventTypeTrade = "trade"
	EventTypeOrder = "order"
)

// Message is one decoded event from either channel.
type Message interface {
	// EventType returns the wire event type, e.g. "book" or "trade".
	EventType() string
}

// options configure a connection.
type options struct {
	url          string
	pingInterval time.Duration
	buffer       int
}

// Option customizes a connection.
type Option func(*options)

// WithURL overrides the upstream URL, mainly for tests.
func WithURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithPingInterval overrides the keepalive interval.
func WithPingInterval(d time.Duration) Option {
	return func(o *options) { o.pingInterval = d }
}

// WithBuffer sets how many decoded messages may queue before the reader
// blocks.
func WithBuffer(n int) Option {
	return func(o *options) { o.buffer = n }
}
