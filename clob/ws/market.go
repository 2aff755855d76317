package ws

// OrderSummary is one price level in a book snapshot.
type OrderSummary struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// BookMessage is a full order book snapshot for one asset.
type BookMessage struct {
	Event     string         `json:"event_type"`
	AssetID   string         `json:"asset_id"`
	Market    string         `json:"market"`
	Timestamp string         `json:"timestamp"`
	Hash      string         `json:"hash"`
	Bids      []OrderSummary `json:"bids"`
	Asks      []OrderSummary `json:"asks"`
}

func (m *BookMessage) EventType() string { return EventTypeBook }

// BestBid returns the highest bid, nil for an empty side.
func (m *BookMessage) BestBid() *OrderSummary {
	if len(m.Bids) == 0 {
		return nil
	}
	return &m.Bids[len(m.Bids)-1]
}

// BestAsk returns the lowest ask, nil for an empty side.
func (m *BookMessage) BestAsk() *OrderSummary {
	if len(m.Asks) == 0 {
		return nil
	}
	return &m.Asks[len(m.Asks)-1]
}

// PriceChange is one level update inside a PriceChangeMessage.
type PriceChange struct {
	AssetID string `json:"asset_id"`
	Price   string `json:"price"`
	Size    string `json:"size"`
	Side    string `json:"side"`
	Hash    string `json:"hash"`
}

// PriceChangeMessage carries incremental book level updates.
type PriceChangeMessage struct {
	Event     string        `json:"event_type"`
	Market    string        `json:"market"`
	AssetID   string        `json:"asset_id"`
	Timestamp string        `json:"timestamp"`
	Changes   []PriceChange `json:"changes"`
}

func (m *PriceChangeMessage) EventType() string { return EventTypePriceChange }

// TickSizeChangeMessage reports a market switching tick granularity, which
// happens when prices approach the extremes.
type TickSizeChangeMessage struct {
	Event       string `json:"event_type"`
	AssetID     string `json:"asset_id"`
	Market      string `json:"market"`
	OldTickSize string `json:"old_tick_size"`
	NewTickSize string `json:"new_tick_size"`
	Timestamp   string `json:"timestamp"`
}

func (m *TickSizeChangeMessage) EventType() string { return EventTypeTickSizeChange }

// LastTradePriceMessage reports the most recent trade on an asset.
type LastTradePriceMessage struct {
	Event      string `json:"event_type"`
	AssetID    string `json:"asset_id"`
	Market     string `json:"market"`
	Price      string `json:"price"`
	Side       string `json:"side"`
	Size       string `json:"size"`
	FeeRateBps string `json:"fee_rate_bps"`
	Timestamp  string `json:"timestamp"`
}

func (m *LastTradePriceMessage) EventType() string { return EventTypeLastTradePrice }
