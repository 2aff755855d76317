package ws

// MakerOrder is one maker fill inside a trade event.
type MakerOrder struct {
	OrderID       string `json:"order_id"`
	Owner         string `json:"owner"`
	MakerAddress  string `json:"maker_address"`
	MatchedAmount string `json:"matched_amount"`
	Price         string `json:"price"`
	FeeRateBps    string `json:"fee_rate_bps"`
	AssetID       string `json:"asset_id"`
	Outcome       string `json:"outcome"`
}

// TradeMessage reports a match involving one of the account's orders.
type TradeMessage struct {
	Event        string       `json:"event_type"`
	ID           string       `json:"id"`
	TakerOrderID string       `json:"taker_order_id"`
	Market       string       `json:"market"`
	AssetID      string       `json:"asset_id"`
	Side         string       `json:"side"`
	Size         string       `json:"size"`
	Price        string       `json:"price"`
	Status       string       `json:"status"`
	Outcome      string       `json:"outcome"`
	Owner        string       `json:"owner"`
	MatchTime    string       `json:"matchtime"`
	LastUpdate   string       `json:"last_update"`
	MakerOrders  []MakerOrder `json:"maker_orders"`
	Timestamp    string       `json:"timestamp"`
}

func (m *TradeMessage) EventType() string { return EventTypeTrade }

// Order lifecycle transitions on the user channel.
const (
	OrderPlacement    = "PLACEMENT"
	OrderUpdate       = "UPDATE"
	OrderCancellation = "CANCELLATION"
)

// OrderMessage reports a lifecycle change of one of the account's orders.
type OrderMessage struct {
	Event        string `json:"event_type"`
	ID           string `json:"id"`
	Type         string `json:"type"` // PLACEMENT, UPDATE or CANCELLATION
	Market       string `json:"market"`
	AssetID      string `json:"asset_id"`
	Side         string `json:"side"`
	Price        string `json:"price"`
	OriginalSize string `json:"original_size"`
	SizeMatched  string `json:"size_matched"`
	Owner        string `json:"owner"`
	Outcome      string `json:"outcome"`
	OrderType    string `json:"order_type"`
	CreatedAt    string `json:"created_at"`
	Timestamp    string `json:"timestamp"`
}

func (m *OrderMessage) EventType() string { return EventTypeOrder }
