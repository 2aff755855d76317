package signing

import (
	"github.com/roushou/polyte/clob/types"
)

// ContractConfig holds the fixed contract addresses for one network. Looked up
// by chain ID, never mutated.
type ContractConfig struct {
	Exchange          string
	NegRiskExchange   string
	NegRiskAdapter    string
	Collateral        string
	ConditionalTokens string
}

const (
	// CollateralTokenDecimals is the USDC precision.
	CollateralTokenDecimals = 6

	// ConditionalTokenDecimals matches the collateral precision.
	ConditionalTokenDecimals = 6
)

// PolygonMainnetContracts are the chain 137 deployments.
var PolygonMainnetContracts = ContractConfig{
	Exchange:          "0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E",
	NegRiskExchange:   "0xC5d563A36AE78145C45a50134d48A1215220f80a",
	NegRiskAdapter:    "0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296",
	Collateral:        "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", // USDC
	ConditionalTokens: "0x4D97DCd97eC945f40cF65F87097ACe5EA0476045",
}

// AmoyTestnetContracts are the chain 80002 deployments.
var AmoyTestnetContracts = ContractConfig{
	Exchange:          "0xdFE02Eb6733538f8Ea35D585af8DE5958AD99E40",
	NegRiskExchange:   "0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296",
	NegRiskAdapter:    "0xd0D0E471E88e0A8E7C304F2df3A0Cc7400fe4635",
	Collateral:        "0x9c4e1703476e875070ee25b56a58b008cfb8fa78",
	ConditionalTokens: "0x69308FB512518e39F9b16112fA8d994F4e2Bf8bB",
}

// GetContractConfig returns the contract addresses for a chain ID.
func GetContractConfig(chainID types.Chain) (*ContractConfig, error) {
	switch chainID {
	case types.ChainPolygon:
		return &PolygonMainnetContracts, nil
	case types.ChainAmoy:
		return &AmoyTestnetContracts, nil
	default:
		return nil, types.Errorf(types.KindCrypto, "unsupported chain ID: %d", chainID)
	}
}

// ExchangeAddress picks the verifying contract for an order's domain: the
// neg-risk exchange for negatively correlated markets, the standard exchange
// otherwise.
func (c *ContractConfig) ExchangeAddress(negRisk bool) string {
	if negRisk {
		return c.NegRiskExchange
	}
	return c.Exchange
}
