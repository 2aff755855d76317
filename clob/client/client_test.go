package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/roushou/polyte/clob/account"
	"github.com/roushou/polyte/clob/types"
)

const (
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func testAccount(t *testing.T, withCreds bool) *account.Account {
	t.Helper()
	w, err := account.NewWalletFromPrivateKey(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	var creds *types.ApiKeyCreds
	if withCreds {
		creds = &types.ApiKeyCreds{Key: "key-1", Secret: "c2VjcmV0LWtleQ==", Passphrase: "pass-1"}
	}
	return account.New(w, creds)
}

func newTestClient(t *testing.T, handler http.Handler, withCreds bool) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(types.ChainPolygon, testAccount(t, withCreds), WithHost(server.URL)), server
}

// writeJSON sets the content type before writing so the client's decoder
// recognizes the payload.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestGetMarket(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets/0xcond" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(w, Market{
			ConditionID:     "0xcond",
			Question:        "Will it rain?",
			MinimumTickSize: 0.001,
			NegRisk:         true,
			Tokens: []Token{
				{TokenID: "1", Outcome: "Yes"},
				{TokenID: "2", Outcome: "No"},
			},
		})
	})
	client, _ := newTestClient(t, handler, false)

	market, err := client.GetMarket(context.Background(), "0xcond")
	if err != nil {
		t.Fatalf("GetMarket: %v", err)
	}
	if market.TickSize() != types.TickSize0001 {
		t.Errorf("TickSize() = %s, want 0.001", market.TickSize())
	}
	if !market.NegRisk || len(market.Tokens) != 2 {
		t.Errorf("unexpected market: %+v", market)
	}
}

func TestListMarketsPagination(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("next_cursor")
		page := MarketsPage{NextCursor: EndCursor, Data: []Market{{ConditionID: "m2"}}}
		if cursor == "" {
			page = MarketsPage{NextCursor: "YWJj", Data: []Market{{ConditionID: "m1"}}}
		}
		writeJSON(w, page)
	})
	client, _ := newTestClient(t, handler, false)

	first, err := client.ListMarkets(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if first.NextCursor == EndCursor {
		t.Fatal("first page unexpectedly final")
	}
	second, err := client.ListMarkets(context.Background(), first.NextCursor)
	if err != nil {
		t.Fatal(err)
	}
	if second.NextCursor != EndCursor || second.Data[0].ConditionID != "m2" {
		t.Errorf("unexpected second page: %+v", second)
	}
}

func TestL2HeadersOnRequest(t *testing.T) {
	var got http.Header
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, []types.OpenOrder{})
	})
	client, _ := newTestClient(t, handler, true)

	if _, err := client.OpenOrders(context.Background(), nil); err != nil {
		t.Fatalf("OpenOrders: %v", err)
	}

	for _, h := range []string{
		types.HeaderPolyAddress,
		types.HeaderPolySignature,
		types.HeaderPolyTimestamp,
		types.HeaderPolyAPIKey,
		types.HeaderPolyPassphrase,
	} {
		if got.Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
	if got.Get(types.HeaderPolyAddress) != testAddress {
		t.Errorf("address header = %s", got.Get(types.HeaderPolyAddress))
	}
	if sig := got.Get(types.HeaderPolySignature); strings.ContainsAny(sig, "+/") {
		t.Errorf("L2 signature %q uses standard base64 alphabet", sig)
	}
}

func TestL2WithoutCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler(), false)
	_, err := client.OpenOrders(context.Background(), nil)
	if !types.IsKind(err, types.KindAuthentication) {
		t.Fatalf("error = %v, want authentication kind", err)
	}
}

func TestL1HeadersOnDeriveAPIKey(t *testing.T) {
	var got http.Header
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, types.ApiKeyRaw{ApiKey: "k", Secret: "czI=", Passphrase: "p"})
	})
	client, _ := newTestClient(t, handler, false)

	creds, err := client.DeriveAPIKey(context.Background(), 3)
	if err != nil {
		t.Fatalf("DeriveAPIKey: %v", err)
	}
	if creds.Key != "k" {
		t.Errorf("creds = %+v", creds)
	}
	if got.Get(types.HeaderPolyNonce) != "3" {
		t.Errorf("nonce header = %q, want 3", got.Get(types.HeaderPolyNonce))
	}
	sig := got.Get(types.HeaderPolySignature)
	if !strings.HasPrefix(sig, "0x") || len(sig) != 132 {
		t.Errorf("malformed L1 signature %q", sig)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   types.Kind
	}{
		{http.StatusUnauthorized, types.KindAuthentication},
		{http.StatusForbidden, types.KindAuthentication},
		{http.StatusBadRequest, types.KindValidation},
		{http.StatusNotFound, types.KindValidation},
	}
	for _, tt := range tests {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			io.WriteString(w, `{"error":"nope"}`)
		})
		client, _ := newTestClient(t, handler, true)
		_, err := client.GetMarket(context.Background(), "0xcond")
		if !types.IsKind(err, tt.kind) {
			t.Errorf("status %d: error = %v, want kind %s", tt.status, err, tt.kind)
		}
	}
}

func TestPostOrderBody(t *testing.T) {
	var body types.NewOrderRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != EndpointPostOrder {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		writeJSON(w, types.OrderResponse{Success: true, OrderID: "0xorder"})
	})
	client, _ := newTestClient(t, handler, true)

	signed, err := client.Account().SignOrder(&types.Order{
		Salt:          "1",
		Maker:         testAddress,
		Signer:        testAddress,
		Taker:         "0x0000000000000000000000000000000000000000",
		TokenID:       "77",
		MakerAmount:   "5200",
		TakerAmount:   "10000",
		Expiration:    "0",
		Nonce:         "0",
		FeeRateBps:    "0",
		Side:          types.SideBuy,
		SignatureType: types.SignatureTypeEOA,
	}, types.ChainPolygon, false)
	if err != nil {
		t.Fatal(err)
	}

	resp, err := client.PostOrder(context.Background(), signed, types.OrderTypeGTC)
	if err != nil {
		t.Fatalf("PostOrder: %v", err)
	}
	if !resp.Success || resp.OrderID != "0xorder" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if body.Owner != "key-1" || body.OrderType != types.OrderTypeGTC {
		t.Errorf("unexpected request body: %+v", body)
	}
	if body.Order.Signature != signed.Signature {
		t.Error("signature not carried through")
	}
}

func TestCreateOrderResolvesMarketState(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case EndpointGetTickSize:
			io.WriteString(w, `{"minimum_tick_size": 0.01}`)
		case EndpointGetNegRisk:
			io.WriteString(w, `{"neg_risk": false}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	client, _ := newTestClient(t, handler, true)

	signed, err := client.CreateOrder(context.Background(), &CreateOrderParams{
		TokenID: "77",
		Price:   0.52,
		Size:    100,
		Side:    types.SideBuy,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if signed.MakerAmount != "5200" || signed.TakerAmount != "10000" {
		t.Errorf("amounts = (%s, %s)", signed.MakerAmount, signed.TakerAmount)
	}
	if signed.Maker != testAddress || signed.Signer != testAddress {
		t.Errorf("maker/signer = %s/%s", signed.Maker, signed.Signer)
	}
	if !strings.HasPrefix(signed.Signature, "0x") {
		t.Errorf("malformed signature %q", signed.Signature)
	}
}

func TestCreateOrderReusesMarketState(t *testing.T) {
	var tickCalls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case EndpointGetTickSize:
			tickCalls++
			io.WriteString(w, `{"minimum_tick_size": 0.01}`)
		case EndpointGetNegRisk:
			io.WriteString(w, `{"neg_risk": false}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	client, _ := newTestClient(t, handler, true)

	params := &CreateOrderParams{TokenID: "77", Price: 0.52, Size: 100, Side: types.SideBuy}
	for i := 0; i < 2; i++ {
		if _, err := client.CreateOrder(context.Background(), params); err != nil {
			t.Fatalf("CreateOrder #%d: %v", i+1, err)
		}
	}
	if tickCalls != 1 {
		t.Errorf("tick size fetched %d times, want 1", tickCalls)
	}
}

func TestCreateOrderParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params CreateOrderParams
	}{
		{"missing token", CreateOrderParams{Price: 0.5, Size: 1, Side: types.SideBuy}},
		{"bad side", CreateOrderParams{TokenID: "1", Price: 0.5, Size: 1, Side: "HOLD"}},
		{"bad price", CreateOrderParams{TokenID: "1", Price: 1.5, Size: 1, Side: types.SideBuy}},
		{"negative nonce", CreateOrderParams{TokenID: "1", Price: 0.5, Size: 1, Side: types.SideBuy, Nonce: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); !types.IsKind(err, types.KindValidation) {
				t.Errorf("error = %v, want validation kind", err)
			}
		})
	}
}
