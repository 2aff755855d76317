package client

// CLOB REST endpoints.
const (
	EndpointTime = "/time"

	// API key management
	EndpointCreateAPIKey = "/auth/api-key"
	EndpointGetAPIKeys   = "/auth/api-keys"
	EndpointDeleteAPIKey = "/auth/api-key"
	EndpointDeriveAPIKey = "/auth/derive-api-key"

	// Markets and prices
	EndpointGetMarkets        = "/markets"
	EndpointGetMarket         = "/markets/"
	EndpointGetOrderBook      = "/book"
	EndpointGetMidpoint       = "/midpoint"
	EndpointGetPrice          = "/price"
	EndpointGetLastTradePrice = "/last-trade-price"
	EndpointGetTickSize       = "/tick-size"
	EndpointGetNegRisk        = "/neg-risk"

	// Orders
	EndpointPostOrder          = "/order"
	EndpointCancelOrder        = "/order"
	EndpointCancelOrders       = "/orders"
	EndpointCancelAll          = "/cancel-all"
	EndpointCancelMarketOrders = "/cancel-market-orders"
	EndpointGetOrder           = "/data/order/"
	EndpointGetOpenOrders      = "/data/orders"
	EndpointGetTrades          = "/data/trades"

	// Balances
	EndpointGetBalanceAllowance = "/balance-allowance"
)
