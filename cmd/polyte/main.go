// polyte is the command-line entry point to the toolkit: market discovery,
// prices, order management, credentials and realtime streaming.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roushou/polyte/clob/account"
	"github.com/roushou/polyte/clob/client"
	"github.com/roushou/polyte/clob/types"
	"github.com/roushou/polyte/clob/ws"
	"github.com/roushou/polyte/data"
	"github.com/roushou/polyte/gamma"
	"github.com/roushou/polyte/pkg/logger"
)

func usage() {
	fmt.Fprint(os.Stderr, `usage: polyte <command> [flags]

Market data:
  markets        list CLOB markets
  market         show one market by condition ID
  book           show the order book for a token
  price          show best bid/ask and midpoint for a token
  events         list Gamma events

Trading (requires POLYMARKET_PRIVATE_KEY and API credentials):
  place          sign and post an order
  cancel         cancel an order by ID
  cancel-all     cancel all resting orders
  orders         list open orders
  trades         list account trades
  balance        show collateral balance and allowance
  apikey         derive or create API credentials
  positions      list positions via the Data API

Streaming:
  stream         stream market events for tokens
  stream-user    stream the account's order and trade events

Global environment: POLYMARKET_PRIVATE_KEY, POLYMARKET_API_KEY,
POLYMARKET_API_SECRET, POLYMARKET_API_PASSPHRASE (also read from .env).
`)
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()
	logger.InitDefault()

	if len(os.Args) < 2 {
		usage()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "markets":
		err = cmdMarkets(ctx, os.Args[2:])
	case "market":
		err = cmdMarket(ctx, os.Args[2:])
	case "book":
		err = cmdBook(ctx, os.Args[2:])
	case "price":
		err = cmdPrice(ctx, os.Args[2:])
	case "events":
		err = cmdEvents(ctx, os.Args[2:])
	case "place":
		err = cmdPlace(ctx, os.Args[2:])
	case "cancel":
		err = cmdCancel(ctx, os.Args[2:])
	case "cancel-all":
		err = cmdCancelAll(ctx, os.Args[2:])
	case "orders":
		err = cmdOrders(ctx, os.Args[2:])
	case "trades":
		err = cmdTrades(ctx, os.Args[2:])
	case "balance":
		err = cmdBalance(ctx, os.Args[2:])
	case "apikey":
		err = cmdAPIKey(ctx, os.Args[2:])
	case "positions":
		err = cmdPositions(ctx, os.Args[2:])
	case "stream":
		err = cmdStream(ctx, os.Args[2:])
	case "stream-user":
		err = cmdStreamUser(ctx, os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "polyte %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

// chainFlag installs the shared -chain flag.
func chainFlag(fs *flag.FlagSet) *int64 {
	return fs.Int64("chain", int64(types.ChainPolygon), "chain ID (137 mainnet, 80002 Amoy)")
}

func publicClient(chain int64) *client.Client {
	return client.NewPublic(types.Chain(chain))
}

func tradingClient(chain int64) (*client.Client, error) {
	acct, err := account.FromEnv()
	if err != nil {
		return nil, err
	}
	return client.New(types.Chain(chain), acct), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdMarkets(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("markets", flag.ExitOnError)
	chain := chainFlag(fs)
	cursor := fs.String("cursor", "", "pagination cursor")
	fs.Parse(args)

	page, err := publicClient(*chain).ListMarkets(ctx, *cursor)
	if err != nil {
		return err
	}
	for _, m := range page.Data {
		fmt.Printf("%s  %s\n", m.ConditionID, m.Question)
	}
	if page.NextCursor != client.EndCursor {
		fmt.Printf("next cursor: %s\n", page.NextCursor)
	}
	return nil
}

func cmdMarket(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("market", flag.ExitOnError)
	chain := chainFlag(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected one condition ID")
	}

	market, err := publicClient(*chain).GetMarket(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return printJSON(market)
}

func cmdBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	chain := chainFlag(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected one token ID")
	}

	book, err := publicClient(*chain).GetOrderBook(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return printJSON(book)
}

func cmdPrice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	chain := chainFlag(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected one token ID")
	}

	c := publicClient(*chain)
	tokenID := fs.Arg(0)
	bid, err := c.GetPrice(ctx, tokenID, types.SideBuy)
	if err != nil {
		return err
	}
	ask, err := c.GetPrice(ctx, tokenID, types.SideSell)
	if err != nil {
		return err
	}
	mid, err := c.GetMidpoint(ctx, tokenID)
	if err != nil {
		return err
	}
	fmt.Printf("bid %s  ask %s  mid %s\n", bid, ask, mid)
	return nil
}

func cmdEvents(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	limit := fs.Int("limit", 20, "max events")
	tag := fs.String("tag", "", "filter by tag slug")
	fs.Parse(args)

	events, err := gamma.New().ListEvents(ctx, &gamma.ListEventsParams{
		Active:  gamma.Bool(true),
		TagSlug: *tag,
	})
	if err != nil {
		return err
	}
	if len(events) > *limit {
		events = events[:*limit]
	}
	for _, e := range events {
		fmt.Printf("%s  %s (%d markets)\n", e.Slug, e.Title, len(e.Markets))
	}
	return nil
}

func cmdPlace(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	chain := chainFlag(fs)
	tokenID := fs.String("token", "", "token ID (required)")
	side := fs.String("side", "BUY", "BUY or SELL")
	price := fs.Float64("price", 0, "limit price in (0, 1]")
	size := fs.Float64("size", 0, "share size")
	orderType := fs.String("type", "GTC", "GTC, FOK, GTD or FAK")
	expiration := fs.Int64("expiration", 0, "unix expiration for GTD orders")
	fs.Parse(args)

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}
	resp, err := c.PlaceOrder(ctx, &client.CreateOrderParams{
		TokenID:    *tokenID,
		Price:      *price,
		Size:       *size,
		Side:       types.Side(*side),
		Expiration: *expiration,
	}, types.OrderType(*orderType))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func cmdCancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	chain := chainFlag(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("expected one order ID")
	}

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}
	resp, err := c.CancelOrder(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func cmdCancelAll(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel-all", flag.ExitOnError)
	chain := chainFlag(fs)
	fs.Parse(args)

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}
	resp, err := c.CancelAll(ctx)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func cmdOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	chain := chainFlag(fs)
	market := fs.String("market", "", "filter by condition ID")
	fs.Parse(args)

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}
	orders, err := c.OpenOrders(ctx, &client.OpenOrdersParams{Market: *market})
	if err != nil {
		return err
	}
	return printJSON(orders)
}

func cmdTrades(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trades", flag.ExitOnError)
	chain := chainFlag(fs)
	market := fs.String("market", "", "filter by condition ID")
	fs.Parse(args)

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}
	trades, err := c.Trades(ctx, &client.TradesParams{Market: *market})
	if err != nil {
		return err
	}
	return printJSON(trades)
}

func cmdBalance(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	chain := chainFlag(fs)
	tokenID := fs.String("token", "", "conditional token ID (defaults to collateral)")
	fs.Parse(args)

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}

	params := &client.BalanceAllowanceParams{AssetType: types.AssetTypeCollateral}
	if *tokenID != "" {
		params = &client.BalanceAllowanceParams{AssetType: types.AssetTypeConditional, TokenID: *tokenID}
	}
	balance, err := c.BalanceAllowance(ctx, params)
	if err != nil {
		return err
	}
	return printJSON(balance)
}

func cmdAPIKey(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apikey", flag.ExitOnError)
	chain := chainFlag(fs)
	nonce := fs.Int64("nonce", 0, "credential nonce")
	fs.Parse(args)

	c, err := tradingClient(*chain)
	if err != nil {
		return err
	}
	creds, err := c.CreateOrDeriveAPIKey(ctx, *nonce)
	if err != nil {
		return err
	}
	// The one place credentials are intentionally printed: the caller needs
	// them for their environment. Everything else renders them redacted.
	fmt.Printf("POLYMARKET_API_KEY=%s\n", creds.Key)
	fmt.Printf("POLYMARKET_API_SECRET=%s\n", creds.Secret)
	fmt.Printf("POLYMARKET_API_PASSPHRASE=%s\n", creds.Passphrase)
	return nil
}

func cmdPositions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("positions", flag.ExitOnError)
	user := fs.String("user", "", "wallet address (defaults to the configured account)")
	fs.Parse(args)

	addr := *user
	if addr == "" {
		acct, err := account.FromEnv()
		if err != nil {
			return err
		}
		addr = acct.Address().Hex()
	}

	positions, err := data.New().Positions(ctx, &data.PositionsParams{User: addr})
	if err != nil {
		return err
	}
	return printJSON(positions)
}

func cmdStream(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		return errors.New("expected at least one token ID")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	conn, err := ws.ConnectMarket(dialCtx, fs.Args())
	cancel()
	if err != nil {
		return err
	}
	defer conn.Close()

	return pumpStream(ctx, conn)
}

func cmdStreamUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stream-user", flag.ExitOnError)
	fs.Parse(args)

	acct, err := account.FromEnv()
	if err != nil {
		return err
	}
	if !acct.HasCredentials() {
		return errors.New("user stream requires API credentials")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	conn, err := ws.ConnectUser(dialCtx, fs.Args(), acct.Credentials())
	cancel()
	if err != nil {
		return err
	}
	defer conn.Close()

	return pumpStream(ctx, conn)
}

// pumpStream prints events as JSON lines until the stream or context ends.
func pumpStream(ctx context.Context, conn *ws.Conn) error {
	enc := json.NewEncoder(os.Stdout)
	for {
		msg, err := conn.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || (types.IsKind(err, types.KindTransport) && ctx.Err() != nil) {
				return nil
			}
			return err
		}
		line := struct {
			Event string `json:"event"`
			Data  any    `json:"data"`
		}{Event: msg.EventType(), Data: msg}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
}
