package gamma

// Market is Gamma's view of a market. Gamma predates the CLOB API and keeps
// its own JSON dialect: camelCase keys, and numeric fields that arrive as
// strings. Outcomes and ClobTokenIDs are JSON-encoded arrays inside strings.
type Market struct {
	ID              string  `json:"id"`
	ConditionID     string  `json:"conditionId"`
	QuestionID      string  `json:"questionID"`
	Slug            string  `json:"slug"`
	Question        string  `json:"question"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Outcomes        string  `json:"outcomes"`
	OutcomePrices   string  `json:"outcomePrices"`
	ClobTokenIDs    string  `json:"clobTokenIds"`
	Volume          string  `json:"volume"`
	VolumeNum       float64 `json:"volumeNum"`
	Volume24Hr      float64 `json:"volume24hr"`
	Liquidity       string  `json:"liquidity"`
	LiquidityNum    float64 `json:"liquidityNum"`
	StartDateISO    string  `json:"startDateIso"`
	EndDateISO      string  `json:"endDateIso"`
	Image           string  `json:"image"`
	Icon            string  `json:"icon"`
	Active          bool    `json:"active"`
	Closed          bool    `json:"closed"`
	Archived        bool    `json:"archived"`
	Restricted      bool    `json:"restricted"`
	AcceptingOrders bool    `json:"acceptingOrders"`
	EnableOrderBook bool    `json:"enableOrderBook"`
	NegRisk         bool    `json:"negRisk"`
	NegRiskMarketID string  `json:"negRiskMarketID"`
	GroupItemTitle  string  `json:"groupItemTitle"`
	LastTradePrice  float64 `json:"lastTradePrice"`
	BestBid         float64 `json:"bestBid"`
	BestAsk         float64 `json:"bestAsk"`
	Spread          float64 `json:"spread"`
	OrderMinSize    float64 `json:"orderMinSize"`
	OrderTickSize   float64 `json:"orderPriceMinTickSize"`
	Tags            []Tag   `json:"tags"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// Event groups related markets under one headline.
type Event struct {
	ID           string   `json:"id"`
	Ticker       string   `json:"ticker"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Image        string   `json:"image"`
	Icon         string   `json:"icon"`
	Active       bool     `json:"active"`
	Closed       bool     `json:"closed"`
	Archived     bool     `json:"archived"`
	Featured     bool     `json:"featured"`
	Restricted   bool     `json:"restricted"`
	Liquidity    float64  `json:"liquidity"`
	Volume       float64  `json:"volume"`
	Volume24Hr   float64  `json:"volume24hr"`
	OpenInterest float64  `json:"openInterest"`
	NegRisk      bool     `json:"negRisk"`
	Markets      []Market `json:"markets"`
	Tags         []Tag    `json:"tags"`
	Series       []Series `json:"series"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Tag categorizes markets and events.
type Tag struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Label     string `json:"label"`
	ForceShow bool   `json:"forceShow"`
	ForceHide bool   `json:"forceHide"`
}

// Series is a recurring grouping of events, like a season or tournament.
type Series struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Icon      string  `json:"icon"`
	Active    bool    `json:"active"`
	Closed    bool    `json:"closed"`
	Archived  bool    `json:"archived"`
	Volume    float64 `json:"volume"`
	Liquidity float64 `json:"liquidity"`
	Events    []Event `json:"events"`
}
