package client

import (
	"context"
	"net/http"

	"github.com/roushou/polyte/clob/types"
)

// Token is one outcome token of a market.
type Token struct {
	TokenID string  `json:"token_id"`
	Outcome string  `json:"outcome"`
	Price   float64 `json:"price"`
	Winner  bool    `json:"winner"`
}

// Market is the CLOB's view of a single market.
type Market struct {
	ConditionID     string  `json:"condition_id"`
	QuestionID      string  `json:"question_id"`
	Question        string  `json:"question"`
	MarketSlug      string  `json:"market_slug"`
	Description     string  `json:"description"`
	Active          bool    `json:"active"`
	Closed          bool    `json:"closed"`
	AcceptingOrders bool    `json:"accepting_orders"`
	MinimumTickSize float64 `json:"minimum_tick_size"`
	MinimumSize     float64 `json:"minimum_order_size"`
	NegRisk         bool    `json:"neg_risk"`
	EndDateISO      string  `json:"end_date_iso"`
	MakerBaseFee    float64 `json:"maker_base_fee"`
	TakerBaseFee    float64 `json:"taker_base_fee"`
	Tokens          []Token `json:"tokens"`
}

// TickSize returns the market's tick granularity.
func (m *Market) TickSize() types.TickSize {
	return types.TickSizeFromFloat(m.MinimumTickSize)
}

// MarketsPage is one page of the paginated market listing. NextCursor is
// "LTE=" on the final page.
type MarketsPage struct {
	Limit      int      `json:"limit"`
	Count      int      `json:"count"`
	NextCursor string   `json:"next_cursor"`
	Data       []Market `json:"data"`
}

// EndCursor marks the final page of a paginated listing.
const EndCursor = "LTE="

// OrderBookLevel is one price level of the book.
type OrderBookLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// OrderBook is a full book snapshot for one token.
type OrderBook struct {
	Market    string           `json:"market"`
	AssetID   string           `json:"asset_id"`
	Timestamp string           `json:"timestamp"`
	Hash      string           `json:"hash"`
	Bids      []OrderBookLevel `json:"bids"`
	Asks      []OrderBookLevel `json:"asks"`
}

// PriceResponse is the /price and /midpoint payload.
type PriceResponse struct {
	Price string `json:"price"`
}

type midpointResponse struct {
	Mid string `json:"mid"`
}

type tickSizeResponse struct {
	MinimumTickSize float64 `json:"minimum_tick_size"`
}

type negRiskResponse struct {
	NegRisk bool `json:"neg_risk"`
}

// GetMarket fetches one market by condition ID.
func (c *Client) GetMarket(ctx context.Context, conditionID string) (*Market, error) {
	var market Market
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetMarket + conditionID,
	}, &market)
	if err != nil {
		return nil, err
	}
	return &market, nil
}

// ListMarkets fetches one page of markets. Pass an empty cursor for the first
// page; iterate until NextCursor equals EndCursor.
func (c *Client) ListMarkets(ctx context.Context, cursor string) (*MarketsPage, error) {
	spec := requestSpec{method: http.MethodGet, endpoint: EndpointGetMarkets}
	if cursor != "" {
		spec.params = map[string]string{"next_cursor": cursor}
	}

	var page MarketsPage
	if err := c.do(ctx, spec, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrderBook fetches the book snapshot for a token.
func (c *Client) GetOrderBook(ctx context.Context, tokenID string) (*OrderBook, error) {
	var book OrderBook
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetOrderBook,
		params:   map[string]string{"token_id": tokenID},
	}, &book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetPrice fetches the best bid or ask for a token.
func (c *Client) GetPrice(ctx context.Context, tokenID string, side types.Side) (string, error) {
	var resp PriceResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetPrice,
		params:   map[string]string{"token_id": tokenID, "side": string(side)},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Price, nil
}

// GetMidpoint fetches the book midpoint for a token.
func (c *Client) GetMidpoint(ctx context.Context, tokenID string) (string, error) {
	var resp midpointResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetMidpoint,
		params:   map[string]string{"token_id": tokenID},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Mid, nil
}

// GetLastTradePrice fetches the most recent trade price for a token.
func (c *Client) GetLastTradePrice(ctx context.Context, tokenID string) (string, error) {
	var resp PriceResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetLastTradePrice,
		params:   map[string]string{"token_id": tokenID},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Price, nil
}

// GetTickSize fetches the minimum tick for a token.
func (c *Client) GetTickSize(ctx context.Context, tokenID string) (types.TickSize, error) {
	var resp tickSizeResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetTickSize,
		params:   map[string]string{"token_id": tokenID},
	}, &resp)
	if err != nil {
		return "", err
	}
	return types.TickSizeFromFloat(resp.MinimumTickSize), nil
}

// GetNegRisk reports whether a token belongs to a neg-risk market, which
// changes the contract orders verify against.
func (c *Client) GetNegRisk(ctx context.Context, tokenID string) (bool, error) {
	var resp negRiskResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetNegRisk,
		params:   map[string]string{"token_id": tokenID},
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.NegRisk, nil
}

// GetServerTime fetches the exchange's unix time, useful for diagnosing L2
// signature timestamp rejections.
func (c *Client) GetServerTime(ctx context.Context) (int64, error) {
	var ts int64
	if err := c.do(ctx, requestSpec{method: http.MethodGet, endpoint: EndpointTime}, &ts); err != nil {
		return 0, err
	}
	return ts, nil
}
