package types

// Exchange-defined authentication header names. These must match byte-for-byte.
const (
	HeaderPolyAddress    = "POLY_ADDRESS"
	HeaderPolySignature  = "POLY_SIGNATURE"
	HeaderPolyTimestamp  = "POLY_TIMESTAMP"
	HeaderPolyNonce      = "POLY_NONCE"
	HeaderPolyAPIKey     = "POLY_API_KEY"
	HeaderPolyPassphrase = "POLY_PASSPHRASE"
)

// L1PolyHeader is the header set for L1 (wallet-signed) authentication, used
// only for API-key creation flows.
type L1PolyHeader struct {
	PolyAddress   string
	PolySignature string
	PolyTimestamp string
	PolyNonce     string
}

// Map renders the headers under their exchange-defined names.
func (h *L1PolyHeader) Map() map[string]string {
	return map[string]string{
		HeaderPolyAddress:   h.PolyAddress,
		HeaderPolySignature: h.PolySignature,
		HeaderPolyTimestamp: h.PolyTimestamp,
		HeaderPolyNonce:     h.PolyNonce,
	}
}

// L2PolyHeader is the header set for L2 (HMAC) per-request authentication.
type L2PolyHeader struct {
	PolyAddress    string
	PolySignature  string
	PolyTimestamp  string
	PolyAPIKey     string
	PolyPassphrase string
}

// Map renders the headers under their exchange-defined names.
func (h *L2PolyHeader) Map() map[string]string {
	return map[string]string{
		HeaderPolyAddress:    h.PolyAddress,
		HeaderPolySignature:  h.PolySignature,
		HeaderPolyTimestamp:  h.PolyTimestamp,
		HeaderPolyAPIKey:     h.PolyAPIKey,
		HeaderPolyPassphrase: h.PolyPassphrase,
	}
}

// L2HeaderArgs carries the request parts that feed the HMAC message.
type L2HeaderArgs struct {
	Method      string
	RequestPath string
	Body        string
}
