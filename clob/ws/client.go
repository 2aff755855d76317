package ws

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/roushou/polyte/clob/types"
	"github.com/roushou/polyte/pkg/logger"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = types.NewError(types.KindTransport, "connection closed")

// Conn is one live subscription. Messages are pulled with Next; the
// connection keeps itself alive with text PING keepalives until closed.
//
// One goroutine owns the write half (keepalives and the closing handshake);
// a second one owns reads. Neither half ever needs a mutex.
type Conn struct {
	ws  *websocket.Conn
	log *logrus.Entry

	msgs chan Message
	errc chan error

	stop      chan struct{}
	readDone  chan struct{}
	writeDone chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	pingInterval time.Duration
}

// ConnectMarket subscribes to book events for the given asset IDs on the
// public market channel.
func ConnectMarket(ctx context.Context, assetIDs []string, opts ...Option) (*Conn, error) {
	if len(assetIDs) == 0 {
		return nil, types.NewError(types.KindValidation, "at least one asset ID is required")
	}
	return connect(ctx, MarketURL, newMarketSubscription(assetIDs), opts)
}

// ConnectUser subscribes to the account's order and trade events for the
// given markets (condition IDs).
func ConnectUser(ctx context.Context, markets []string, creds *types.ApiKeyCreds, opts ...Option) (*Conn, error) {
	if creds == nil || creds.Key == "" || creds.Secret == "" || creds.Passphrase == "" {
		return nil, types.NewError(types.KindAuthentication, "user channel requires API credentials")
	}
	return connect(ctx, UserURL, newUserSubscription(markets, creds), opts)
}

func connect(ctx context.Context, defaultURL string, subscription any, opts []Option) (*Conn, error) {
	o := options{
		url:          defaultURL,
		pingInterval: DefaultPingInterval,
		buffer:       64,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, o.url, nil)
	if err != nil {
		return nil, types.WrapError(types.KindTransport, err, "dial "+o.url)
	}

	// The subscribe frame goes out before the write loop starts, so the
	// single-writer rule holds.
	if err := ws.WriteJSON(subscription); err != nil {
		ws.Close()
		return nil, types.WrapError(types.KindTransport, err, "send subscription")
	}

	c := &Conn{
		ws:           ws,
		log:          logger.New("ws").WithField("conn_id", uuid.NewString()),
		msgs:         make(chan Message, o.buffer),
		errc:         make(chan error, 1),
		stop:         make(chan struct{}),
		readDone:     make(chan struct{}),
		writeDone:    make(chan struct{}),
		pingInterval: o.pingInterval,
	}

	go c.readLoop()
	go c.writeLoop()

	c.log.WithField("url", o.url).Debug("connected")
	return c, nil
}

// Next blocks until a message arrives, the stream ends, or ctx is done.
// A clean server close yields io.EOF; transport and protocol failures carry
// their error kind. After Close it always returns ErrClosed.
func (c *Conn) Next(ctx context.Context) (Message, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	// Drain pending messages before surfacing a terminal error, so events
	// received ahead of a disconnect are not lost.
	select {
	case msg := <-c.msgs:
		return msg, nil
	default:
	}

	select {
	case <-ctx.Done():
		return nil, types.WrapError(types.KindTransport, ctx.Err(), "next message")
	case msg := <-c.msgs:
		if c.closed.Load() {
			return nil, ErrClosed
		}
		return msg, nil
	case err := <-c.errc:
		return nil, err
	}
}

// Close sends the closing handshake and tears the connection down. Safe to
// call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.stop)
		<-c.writeDone
		c.ws.Close()
		<-c.readDone
		c.log.Debug("closed")
	})
	return nil
}

// fail parks the terminal error for Next. Only the first error wins.
func (c *Conn) fail(err error) {
	select {
	case c.errc <- err:
	default:
	}
}

// readLoop owns the read half: it decodes frames and hands messages to Next.
// Binary frames are treated as UTF-8 text, matching upstream behavior.
func (c *Conn) readLoop() {
	defer close(c.readDone)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if c.closed.Load() {
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.fail(io.EOF)
			} else {
				c.fail(types.WrapError(types.KindTransport, err, "read frame"))
			}
			return
		}

		msgs, err := decodeFrame(data)
		if err != nil {
			c.fail(err)
			return
		}
		for _, msg := range msgs {
			select {
			case c.msgs <- msg:
			case <-c.stop:
				return
			}
		}
	}
}

// writeLoop owns the write half: keepalives on a ticker, then the close
// frame on shutdown.
func (c *Conn) writeLoop() {
	defer close(c.writeDone)

	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.ws.WriteMessage(websocket.TextMessage, []byte("PING")); err != nil {
				// The read side surfaces the connection failure.
				c.log.WithError(err).Debug("keepalive failed")
				return
			}
		case <-c.stop:
			deadline := time.Now().Add(time.Second)
			c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return
		}
	}
}
