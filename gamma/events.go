package gamma

import (
	"context"
	"net/url"
)

// ListEventsParams filter the event listing; zero values mean no filter.
type ListEventsParams struct {
	pagination
	Slugs    []string
	Active   *bool
	Closed   *bool
	Archived *bool
	Featured *bool
	TagSlug  string
}

func (p *ListEventsParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	p.pagination.apply(q)
	for _, slug := range p.Slugs {
		q.Add("slug", slug)
	}
	setBool(q, "active", p.Active)
	setBool(q, "closed", p.Closed)
	setBool(q, "archived", p.Archived)
	setBool(q, "featured", p.Featured)
	if p.TagSlug != "" {
		q.Set("tag_slug", p.TagSlug)
	}
	return q
}

// ListEvents lists events matching the filters.
func (c *Client) ListEvents(ctx context.Context, params *ListEventsParams) ([]Event, error) {
	var events []Event
	if err := c.get(ctx, "/events", params.query(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one event by its Gamma ID.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	var event Event
	if err := c.get(ctx, "/events/"+url.PathEscape(id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEventBySlug fetches one event by slug.
func (c *Client) GetEventBySlug(ctx context.Context, slug string) (*Event, error) {
	var event Event
	if err := c.get(ctx, "/events/slug/"+url.PathEscape(slug), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
