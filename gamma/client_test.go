package gamma

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roushou/polyte/clob/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(WithHost(server.URL))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestListMarketsQuery(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets" {
			t.Errorf("path = %s", r.URL.Path)
		}
		query = r.URL.Query()
		writeJSON(w, []Market{{ID: "1", Slug: "will-it-rain", NegRisk: true}})
	})

	markets, err := client.ListMarkets(context.Background(), &ListMarketsParams{
		pagination: pagination{Limit: 5, Order: "volumeNum", Ascending: false},
		Active:     Bool(true),
		Slugs:      []string{"will-it-rain"},
	})
	if err != nil {
		t.Fatalf("ListMarkets: %v", err)
	}
	if len(markets) != 1 || markets[0].Slug != "will-it-rain" {
		t.Errorf("unexpected markets: %+v", markets)
	}

	if got := query["limit"]; len(got) != 1 || got[0] != "5" {
		t.Errorf("limit = %v", got)
	}
	if got := query["active"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("active = %v", got)
	}
	if got := query["ascending"]; len(got) != 1 || got[0] != "false" {
		t.Errorf("ascending = %v", got)
	}
	if got := query["slug"]; len(got) != 1 || got[0] != "will-it-rain" {
		t.Errorf("slug = %v", got)
	}
}

func TestGetEventBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/slug/election-2028" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(w, Event{ID: "9", Slug: "election-2028", Markets: []Market{{ID: "1"}}})
	})

	event, err := client.GetEventBySlug(context.Background(), "election-2028")
	if err != nil {
		t.Fatalf("GetEventBySlug: %v", err)
	}
	if event.ID != "9" || len(event.Markets) != 1 {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestErrorMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such market", http.StatusNotFound)
	})

	_, err := client.GetMarket(context.Background(), "missing")
	if !types.IsKind(err, types.KindValidation) {
		t.Fatalf("error = %v, want validation kind", err)
	}
}

func TestTransportError(t *testing.T) {
	client := New(WithHost("http://127.0.0.1:1"))
	_, err := client.ListTags(context.Background(), nil)
	if !types.IsKind(err, types.KindTransport) {
		t.Fatalf("error = %v, want transport kind", err)
	}
}
