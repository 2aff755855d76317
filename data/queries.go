package data

import (
	"context"
	"net/url"
	"strconv"

	"github.com/roushou/polyte/clob/types"
)

// PositionsParams filter a user's open positions.
type PositionsParams struct {
	User          string // proxy wallet address, required
	Market        string // condition ID
	SizeThreshold float64
	Redeemable    *bool
	SortBy        string // CURRENT, INITIAL, TOKENS, CASHPNL, PERCENTPNL, TITLE, RESOLVING, PRICE, AVGPRICE
	SortDirection string // ASC or DESC
	Limit         int
	Offset        int
}

// Positions lists a user's open positions.
func (c *Client) Positions(ctx context.Context, params *PositionsParams) ([]Position, error) {
	if params == nil || params.User == "" {
		return nil, types.NewError(types.KindValidation, "user address is required")
	}

	q := url.Values{}
	q.Set("user", params.User)
	if params.Market != "" {
		q.Set("market", params.Market)
	}
	if params.SizeThreshold > 0 {
		q.Set("sizeThreshold", strconv.FormatFloat(params.SizeThreshold, 'f', -1, 64))
	}
	if params.Redeemable != nil {
		q.Set("redeemable", strconv.FormatBool(*params.Redeemable))
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.SortDirection != "" {
		q.Set("sortDirection", params.SortDirection)
	}
	applyPage(q, params.Limit, params.Offset)

	var positions []Position
	if err := c.get(ctx, "/positions", q, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// TradesParams filter the public trade feed.
type TradesParams struct {
	User   string
	Market string
	Asset  string
	Side   string // BUY or SELL
	Limit  int
	Offset int
}

// Trades lists public trades, newest first.
func (c *Client) Trades(ctx context.Context, params *TradesParams) ([]Trade, error) {
	q := url.Values{}
	if params != nil {
		if params.User != "" {
			q.Set("user", params.User)
		}
		if params.Market != "" {
			q.Set("market", params.Market)
		}
		if params.Asset != "" {
			q.Set("asset", params.Asset)
		}
		if params.Side != "" {
			q.Set("side", params.Side)
		}
		applyPage(q, params.Limit, params.Offset)
	}

	var trades []Trade
	if err := c.get(ctx, "/trades", q, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// ActivityParams filter a user's on-chain activity.
type ActivityParams struct {
	User   string // required
	Market string
	Types  []string // TRADE, SPLIT, MERGE, REDEEM, REWARD, CONVERSION
	Start  int64    // unix seconds
	End    int64
	Limit  int
	Offset int
}

// Activity lists a user's on-chain actions.
func (c *Client) Activity(ctx context.Context, params *ActivityParams) ([]Activity, error) {
	if params == nil || params.User == "" {
		return nil, types.NewError(types.KindValidation, "user address is required")
	}

	q := url.Values{}
	q.Set("user", params.User)
	if params.Market != "" {
		q.Set("market", params.Market)
	}
	for _, t := range params.Types {
		q.Add("type", t)
	}
	if params.Start > 0 {
		q.Set("start", strconv.FormatInt(params.Start, 10))
	}
	if params.End > 0 {
		q.Set("end", strconv.FormatInt(params.End, 10))
	}
	applyPage(q, params.Limit, params.Offset)

	var activity []Activity
	if err := c.get(ctx, "/activity", q, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Holders lists the top holders of each token in a market.
func (c *Client) Holders(ctx context.Context, conditionID string, limit int) ([]TokenHolders, error) {
	if conditionID == "" {
		return nil, types.NewError(types.KindValidation, "condition ID is required")
	}

	q := url.Values{}
	q.Set("market", conditionID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var holders []TokenHolders
	if err := c.get(ctx, "/holders", q, &holders); err != nil {
		return nil, err
	}
	return holders, nil
}

// OpenInterest fetches the open interest of the given markets.
func (c *Client) OpenInterest(ctx context.Context, conditionIDs []string) ([]OpenInterest, error) {
	if len(conditionIDs) == 0 {
		return nil, types.NewError(types.KindValidation, "at least one condition ID is required")
	}

	q := url.Values{}
	for _, id := range conditionIDs {
		q.Add("market", id)
	}

	var oi []OpenInterest
	if err := c.get(ctx, "/oi", q, &oi); err != nil {
		return nil, err
	}
	return oi, nil
}

// UserValue fetches the total value of a user's positions.
func (c *Client) UserValue(ctx context.Context, user string) (*UserValue, error) {
	if user == "" {
		return nil, types.NewError(types.KindValidation, "user address is required")
	}

	q := url.Values{}
	q.Set("user", user)

	// The endpoint replies with a single-element array.
	var values []UserValue
	if err := c.get(ctx, "/value", q, &values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, types.NewError(types.KindProtocol, "empty value response")
	}
	return &values[0], nil
}

func applyPage(q url.Values, limit, offset int) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
}
