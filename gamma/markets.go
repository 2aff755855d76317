package gamma

import (
	"context"
	"net/url"
	"strconv"
)

// ListMarketsParams filter the market listing; zero values mean no filter.
type ListMarketsParams struct {
	pagination
	Slugs        []string
	ConditionIDs []string
	ClobTokenIDs []string
	Active       *bool
	Closed       *bool
	Archived     *bool
	LiquidityMin float64
	VolumeMin    float64
	TagID        string
	RelatedTags  bool
}

func (p *ListMarketsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	p.pagination.apply(q)
	for _, slug := range p.Slugs {
		q.Add("slug", slug)
	}
	for _, id := range p.ConditionIDs {
		q.Add("condition_ids", id)
	}
	for _, id := range p.ClobTokenIDs {
		q.Add("clob_token_ids", id)
	}
	setBool(q, "active", p.Active)
	setBool(q, "closed", p.Closed)
	setBool(q, "archived", p.Archived)
	if p.LiquidityMin > 0 {
		q.Set("liquidity_num_min", strconv.FormatFloat(p.LiquidityMin, 'f', -1, 64))
	}
	if p.VolumeMin > 0 {
		q.Set("volume_num_min", strconv.FormatFloat(p.VolumeMin, 'f', -1, 64))
	}
	if p.TagID != "" {
		q.Set("tag_id", p.TagID)
		if p.RelatedTags {
			q.Set("related_tags", "true")
		}
	}
	return q
}

// ListMarkets lists markets matching the filters.
func (c *Client) ListMarkets(ctx context.Context, params *ListMarketsParams) ([]Market, error) {
	var markets []Market
	if err := c.get(ctx, "/markets", params.query(), &markets); err != nil {
		return nil, err
	}
	return markets, nil
}

// GetMarket fetches one market by its Gamma ID.
func (c *Client) GetMarket(ctx context.Context, id string) (*Market, error) {
	var market Market
	if err := c.get(ctx, "/markets/"+url.PathEscape(id), nil, &market); err != nil {
		return nil, err
	}
	return &market, nil
}

// GetMarketBySlug fetches one market by slug.
func (c *Client) GetMarketBySlug(ctx context.Context, slug string) (*Market, error) {
	var market Market
	if err := c.get(ctx, "/markets/slug/"+url.PathEscape(slug), nil, &market); err != nil {
		return nil, err
	}
	return &market, nil
}
