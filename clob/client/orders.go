package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/roushou/polyte/clob/signing"
	"github.com/roushou/polyte/clob/types"
)

// CreateOrderParams describe an order in human terms: a price in (0, 1] and a
// share size. The zero values of the optional fields are valid.
type CreateOrderParams struct {
	TokenID    string
	Price      float64
	Size       float64
	Side       types.Side
	FeeRateBps int64 // basis points, 0 for fee-exempt markets
	Nonce      int64
	Expiration int64 // unix seconds, 0 for GTC orders
	Taker      string // empty means public order (zero address)
}

// Validate checks the params before any network round trip.
func (p *CreateOrderParams) Validate() error {
	if p.TokenID == "" {
		return types.NewError(types.KindValidation, "token ID is required")
	}
	if p.Side != types.SideBuy && p.Side != types.SideSell {
		return types.Errorf(types.KindValidation, "invalid side %q", p.Side)
	}
	if p.FeeRateBps < 0 || p.Nonce < 0 || p.Expiration < 0 {
		return types.NewError(types.KindValidation, "fee rate, nonce and expiration must be non-negative")
	}
	return ValidatePriceSize(p.Price, p.Size)
}

// CreateOrder builds and signs an order. It resolves the token's tick size
// and neg-risk flag from the exchange, so the caller only supplies human
// values. The order is not posted; see PostOrder and PlaceOrder.
func (c *Client) CreateOrder(ctx context.Context, params *CreateOrderParams) (*types.SignedOrder, error) {
	if c.account == nil {
		return nil, types.NewError(types.KindAuthentication, "no account attached")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	meta, err := c.marketMeta(ctx, params.TokenID)
	if err != nil {
		return nil, err
	}
	return c.buildOrder(params, meta.tick, meta.negRisk)
}

// marketMeta resolves the token's tick size and neg-risk flag, reusing a
// recent answer when one is cached.
func (c *Client) marketMeta(ctx context.Context, tokenID string) (marketMeta, error) {
	if meta, ok := c.meta.Get(tokenID); ok {
		return meta, nil
	}

	tick, err := c.GetTickSize(ctx, tokenID)
	if err != nil {
		return marketMeta{}, err
	}
	negRisk, err := c.GetNegRisk(ctx, tokenID)
	if err != nil {
		return marketMeta{}, err
	}

	meta := marketMeta{tick: tick, negRisk: negRisk}
	c.meta.Set(tokenID, meta, 0)
	return meta, nil
}

// buildOrder assembles and signs the order with everything already resolved.
func (c *Client) buildOrder(params *CreateOrderParams, tick types.TickSize, negRisk bool) (*types.SignedOrder, error) {
	makerAmount, takerAmount, err := CalculateOrderAmounts(params.Price, params.Size, params.Side, tick)
	if err != nil {
		return nil, err
	}

	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}

	taker := params.Taker
	if taker == "" {
		taker = signing.ZeroAddress
	}

	addr := c.account.Address().Hex()
	order := &types.Order{
		Salt:          salt,
		Maker:         addr,
		Signer:        addr,
		Taker:         taker,
		TokenID:       params.TokenID,
		MakerAmount:   makerAmount,
		TakerAmount:   takerAmount,
		Expiration:    strconv.FormatInt(params.Expiration, 10),
		Nonce:         strconv.FormatInt(params.Nonce, 10),
		FeeRateBps:    strconv.FormatInt(params.FeeRateBps, 10),
		Side:          params.Side,
		SignatureType: types.SignatureTypeEOA,
	}

	return c.account.SignOrder(order, c.chainID, negRisk)
}

// PostOrder submits a signed order.
func (c *Client) PostOrder(ctx context.Context, order *types.SignedOrder, orderType types.OrderType) (*types.OrderResponse, error) {
	if c.account == nil || !c.account.HasCredentials() {
		return nil, types.NewError(types.KindAuthentication, "posting orders requires API credentials")
	}

	body := types.NewOrderRequest{
		Order:     *order,
		Owner:     c.account.Credentials().Key,
		OrderType: orderType,
	}

	var resp types.OrderResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodPost,
		endpoint: EndpointPostOrder,
		auth:     authL2,
		body:     body,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		c.log.WithField("status", resp.Status).Warnf("order rejected: %s", resp.ErrorMsg)
	}
	return &resp, nil
}

// PlaceOrder creates, signs and posts an order in one call.
func (c *Client) PlaceOrder(ctx context.Context, params *CreateOrderParams, orderType types.OrderType) (*types.OrderResponse, error) {
	order, err := c.CreateOrder(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.PostOrder(ctx, order, orderType)
}

// CancelOrder cancels one resting order by ID.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*types.CancelResponse, error) {
	var resp types.CancelResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodDelete,
		endpoint: EndpointCancelOrder,
		auth:     authL2,
		body:     map[string]string{"orderID": orderID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelOrders cancels a batch of resting orders.
func (c *Client) CancelOrders(ctx context.Context, orderIDs []string) (*types.CancelResponse, error) {
	var resp types.CancelResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodDelete,
		endpoint: EndpointCancelOrders,
		auth:     authL2,
		body:     orderIDs,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelAll cancels every resting order of the account.
func (c *Client) CancelAll(ctx context.Context) (*types.CancelResponse, error) {
	var resp types.CancelResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodDelete,
		endpoint: EndpointCancelAll,
		auth:     authL2,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelMarketOrders cancels all resting orders in one market.
func (c *Client) CancelMarketOrders(ctx context.Context, conditionID string) (*types.CancelResponse, error) {
	var resp types.CancelResponse
	err := c.do(ctx, requestSpec{
		method:   http.MethodDelete,
		endpoint: EndpointCancelMarketOrders,
		auth:     authL2,
		body:     map[string]string{"market": conditionID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenOrdersParams filter the open-order listing; zero values mean no filter.
type OpenOrdersParams struct {
	Market  string // condition ID
	AssetID string // token ID
}

// OpenOrders lists the account's resting orders.
func (c *Client) OpenOrders(ctx context.Context, params *OpenOrdersParams) ([]types.OpenOrder, error) {
	query := map[string]string{}
	if params != nil {
		if params.Market != "" {
			query["market"] = params.Market
		}
		if params.AssetID != "" {
			query["asset_id"] = params.AssetID
		}
	}

	var orders []types.OpenOrder
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetOpenOrders,
		auth:     authL2,
		params:   query,
	}, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*types.OpenOrder, error) {
	var order types.OpenOrder
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetOrder + orderID,
		auth:     authL2,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TradesParams filter the trade listing; zero values mean no filter.
type TradesParams struct {
	Market  string
	AssetID string
}

// Trades lists the account's trades.
func (c *Client) Trades(ctx context.Context, params *TradesParams) ([]types.Trade, error) {
	query := map[string]string{}
	if params != nil {
		if params.Market != "" {
			query["market"] = params.Market
		}
		if params.AssetID != "" {
			query["asset_id"] = params.AssetID
		}
	}

	var trades []types.Trade
	err := c.do(ctx, requestSpec{
		method:   http.MethodGet,
		endpoint: EndpointGetTrades,
		auth:     authL2,
		params:   query,
	}, &trades)
	if err != nil {
		return nil, err
	}
	return trades, nil
}
