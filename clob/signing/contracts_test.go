package signing

import (
	"testing"

	"github.com/roushou/polyte/clob/types"
)

func TestGetContractConfig(t *testing.T) {
	tests := []struct {
		name     string
		chainID  types.Chain
		exchange string
	}{
		{"polygon", types.ChainPolygon, "0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E"},
		{"amoy", types.ChainAmoy, "0xdFE02Eb6733538f8Ea35D585af8DE5958AD99E40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetContractConfig(tt.chainID)
			if err != nil {
				t.Fatalf("GetContractConfig(%d): %v", tt.chainID, err)
			}
			if cfg.Exchange != tt.exchange {
				t.Errorf("Exchange = %s, want %s", cfg.Exchange, tt.exchange)
			}
			if cfg.NegRiskExchange == "" || cfg.Collateral == "" || cfg.ConditionalTokens == "" {
				t.Errorf("incomplete config: %+v", cfg)
			}
		})
	}
}

func TestGetContractConfigUnknownChain(t *testing.T) {
	_, err := GetContractConfig(types.Chain(1))
	if err == nil {
		t.Fatal("expected error for unsupported chain")
	}
	if !types.IsKind(err, types.KindCrypto) {
		t.Errorf("error kind = %v, want crypto", err)
	}
}

func TestExchangeAddress(t *testing.T) {
	cfg, err := GetContractConfig(types.ChainPolygon)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.ExchangeAddress(false); got != cfg.Exchange {
		t.Errorf("ExchangeAddress(false) = %s, want %s", got, cfg.Exchange)
	}
	if got := cfg.ExchangeAddress(true); got != cfg.NegRiskExchange {
		t.Errorf("ExchangeAddress(true) = %s, want %s", got, cfg.NegRiskExchange)
	}
}
