package signing

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/roushou/polyte/clob/types"
)

// orderTypes is the EIP-712 type definition the exchange verifies against.
var orderTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"Order": {
		{Name: "salt", Type: "uint256"},
		{Name: "maker", Type: "address"},
		{Name: "signer", Type: "address"},
		{Name: "taker", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "makerAmount", Type: "uint256"},
		{Name: "takerAmount", Type: "uint256"},
		{Name: "expiration", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "feeRateBps", Type: "uint256"},
		{Name: "side", Type: "uint8"},
		{Name: "signatureType", Type: "uint8"},
	},
}

// BuildOrderSignature signs an unsigned order against the given verifying
// contract. The numeric order fields are decimal strings on the wire; each is
// parsed base-10 here and a malformed value fails with a crypto error naming
// the field.
func BuildOrderSignature(signer DigestSigner, chainID types.Chain, exchangeAddress string, order *types.Order) (string, error) {
	salt, err := parseUint("salt", order.Salt)
	if err != nil {
		return "", err
	}
	tokenID, err := parseUint("token_id", order.TokenID)
	if err != nil {
		return "", err
	}
	makerAmount, err := parseUint("maker_amount", order.MakerAmount)
	if err != nil {
		return "", err
	}
	takerAmount, err := parseUint("taker_amount", order.TakerAmount)
	if err != nil {
		return "", err
	}
	expiration, err := parseUint("expiration", order.Expiration)
	if err != nil {
		return "", err
	}
	nonce, err := parseUint("nonce", order.Nonce)
	if err != nil {
		return "", err
	}
	feeRateBps, err := parseUint("fee_rate_bps", order.FeeRateBps)
	if err != nil {
		return "", err
	}

	side := big.NewInt(1) // SELL
	if order.Side == types.SideBuy {
		side = big.NewInt(0)
	}

	typedData := apitypes.TypedData{
		Types:       orderTypes,
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              OrderDomainName,
			Version:           DomainVersion,
			ChainId:           ethmath.NewHexOrDecimal256(int64(chainID)),
			VerifyingContract: exchangeAddress,
		},
		Message: map[string]interface{}{
			"salt":          salt,
			"maker":         common.HexToAddress(order.Maker).Hex(),
			"signer":        common.HexToAddress(order.Signer).Hex(),
			"taker":         common.HexToAddress(order.Taker).Hex(),
			"tokenId":       tokenID,
			"makerAmount":   makerAmount,
			"takerAmount":   takerAmount,
			"expiration":    expiration,
			"nonce":         nonce,
			"feeRateBps":    feeRateBps,
			"side":          side,
			"signatureType": big.NewInt(int64(order.SignatureType)),
		},
	}

	return signTypedData(signer, typedData)
}

// SignOrder resolves the verifying contract from the chain registry and signs
// the order. Neg-risk markets verify against the neg-risk exchange.
func SignOrder(signer DigestSigner, chainID types.Chain, negRisk bool, order *types.Order) (*types.SignedOrder, error) {
	contracts, err := GetContractConfig(chainID)
	if err != nil {
		return nil, err
	}

	sig, err := BuildOrderSignature(signer, chainID, contracts.ExchangeAddress(negRisk), order)
	if err != nil {
		return nil, err
	}

	return &types.SignedOrder{Order: *order, Signature: sig}, nil
}
