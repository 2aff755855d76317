package signing

import (
	"strconv"
	"time"

	"github.com/roushou/polyte/clob/types"
)

// CreateL1Headers builds the header set for wallet-signed (L1) requests.
// Nonce and timestamp are caller-supplied; a zero timestamp means "now". No
// freshness window is enforced client-side, that contract belongs to the
// exchange.
func CreateL1Headers(signer DigestSigner, chainID types.Chain, nonce int64, timestamp int64) (*types.L1PolyHeader, error) {
	ts := timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	sig, err := BuildClobAuthSignature(signer, chainID, ts, nonce)
	if err != nil {
		return nil, err
	}

	return &types.L1PolyHeader{
		PolyAddress:   signer.Address().Hex(),
		PolySignature: sig,
		PolyTimestamp: strconv.FormatInt(ts, 10),
		PolyNonce:     strconv.FormatInt(nonce, 10),
	}, nil
}

// CreateL2Headers builds the header set for HMAC-authenticated (L2) requests.
// The timestamp is captured fresh on every call so replay windows stay tight.
func CreateL2Headers(address string, creds *types.ApiKeyCreds, hmacSigner *HmacSigner, args *types.L2HeaderArgs) (*types.L2PolyHeader, error) {
	if creds == nil || creds.Key == "" || creds.Passphrase == "" {
		return nil, types.NewError(types.KindAuthentication, "incomplete API credentials")
	}

	ts := time.Now().Unix()
	sig := hmacSigner.Sign(BuildHmacMessage(ts, args.Method, args.RequestPath, args.Body))

	return &types.L2PolyHeader{
		PolyAddress:    address,
		PolySignature:  sig,
		PolyTimestamp:  strconv.FormatInt(ts, 10),
		PolyAPIKey:     creds.Key,
		PolyPassphrase: creds.Passphrase,
	}, nil
}
