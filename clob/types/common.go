// Package types holds the shared enums, wire structures and error taxonomy
// used across the CLOB client, signer and streaming packages.
package types

import "math"

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType controls how an order rests on the book.
type OrderType string

const (
	OrderTypeGTC OrderType = "GTC" // Good Till Cancel
	OrderTypeFOK OrderType = "FOK" // Fill or Kill
	OrderTypeGTD OrderType = "GTD" // Good Till Date
	OrderTypeFAK OrderType = "FAK" // Fill and Kill
)

// Chain is a supported blockchain network, identified by its chain ID.
type Chain int

const (
	ChainPolygon Chain = 137
	ChainAmoy    Chain = 80002
)

// SignatureType selects the on-chain signature verification path for an order.
type SignatureType int

const (
	SignatureTypeEOA            SignatureType = 0 // standard Ethereum wallet
	SignatureTypePolyProxy      SignatureType = 1 // Magic Link proxy wallet
	SignatureTypePolyGnosisSafe SignatureType = 2 // Gnosis Safe proxy wallet
)

// AssetType distinguishes collateral from conditional token balances.
type AssetType string

const (
	AssetTypeCollateral  AssetType = "COLLATERAL"
	AssetTypeConditional AssetType = "CONDITIONAL"
)

// TickSize is the minimum price increment a market accepts. Only four
// granularities exist on the exchange.
type TickSize string

const (
	TickSize01    TickSize = "0.1"
	TickSize001   TickSize = "0.01"
	TickSize0001  TickSize = "0.001"
	TickSize00001 TickSize = "0.0001"
)

// Decimals returns the number of decimal places the tick size carries.
func (t TickSize) Decimals() int32 {
	switch t {
	case TickSize01:
		return 1
	case TickSize0001:
		return 3
	case TickSize00001:
		return 4
	default:
		return 2
	}
}

// Float returns the tick size as a float64.
func (t TickSize) Float() float64 {
	switch t {
	case TickSize01:
		return 0.1
	case TickSize0001:
		return 0.001
	case TickSize00001:
		return 0.0001
	default:
		return 0.01
	}
}

// TickSizeFromFloat maps a market's reported minimum tick size onto one of the
// four supported granularities. Unrecognized values fall back to 0.01, the
// exchange default.
func TickSizeFromFloat(v float64) TickSize {
	const eps = 1e-10
	switch {
	case math.Abs(v-0.1) < eps:
		return TickSize01
	case math.Abs(v-0.001) < eps:
		return TickSize0001
	case math.Abs(v-0.0001) < eps:
		return TickSize00001
	default:
		return TickSize001
	}
}

// ApiKeyCreds are the L2 API credentials issued by the exchange.
//
// Secret is base64-encoded; the exchange's own tooling is inconsistent about
// which alphabet and padding it uses, so consumers must tolerate several
// encodings (see signing.NewHmacSigner).
type ApiKeyCreds struct {
	Key        string `json:"key"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// String redacts all fields. Credentials must never end up in logs.
func (c ApiKeyCreds) String() string {
	return "ApiKeyCreds{key:<redacted> secret:<redacted> passphrase:<redacted>}"
}

// GoString redacts %#v output as well.
func (c ApiKeyCreds) GoString() string {
	return c.String()
}

// ApiKeyRaw is the API-key payload as returned by /auth/api-key and
// /auth/derive-api-key.
type ApiKeyRaw struct {
	ApiKey     string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// Creds converts the raw payload into ApiKeyCreds.
func (r ApiKeyRaw) Creds() *ApiKeyCreds {
	return &ApiKeyCreds{Key: r.ApiKey, Secret: r.Secret, Passphrase: r.Passphrase}
}
