package gamma

import (
	"context"
	"net/url"
)

// ListTagsParams filter the tag listing.
type ListTagsParams struct {
	pagination
	IsCarousel *bool
}

func (p *ListTagsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	p.pagination.apply(q)
	setBool(q, "is_carousel", p.IsCarousel)
	return q
}

// ListTags lists tags.
func (c *Client) ListTags(ctx context.Context, params *ListTagsParams) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, "/tags", params.query(), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagBySlug fetches one tag by slug.
func (c *Client) GetTagBySlug(ctx context.Context, slug string) (*Tag, error) {
	var tag Tag
	if err := c.get(ctx, "/tags/slug/"+url.PathEscape(slug), nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListSeriesParams filter the series listing.
type ListSeriesParams struct {
	pagination
	Slugs  []string
	Closed *bool
}

func (p *ListSeriesParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	p.pagination.apply(q)
	for _, slug := range p.Slugs {
		q.Add("slug", slug)
	}
	setBool(q, "closed", p.Closed)
	return q
}

// ListSeries lists series.
func (c *Client) ListSeries(ctx context.Context, params *ListSeriesParams) ([]Series, error) {
	var series []Series
	if err := c.get(ctx, "/series", params.query(), &series); err != nil {
		return nil, err
	}
	return series, nil
}
