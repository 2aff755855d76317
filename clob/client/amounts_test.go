package client

import (
	"math"
	"testing"

	"github.com/roushou/polyte/clob/types"
)

func TestCalculateOrderAmounts(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		size      float64
		side      types.Side
		tick      types.TickSize
		wantMaker string
		wantTaker string
	}{
		{"buy", 0.52, 100, types.SideBuy, types.TickSize001, "5200", "10000"},
		{"sell mirrors buy", 0.52, 100, types.SideSell, types.TickSize001, "10000", "5200"},
		{"buy fractional size", 0.5, 21.04, types.SideBuy, types.TickSize001, "1052", "2104"},
		{"price rounds to tick", 0.333, 10, types.SideBuy, types.TickSize001, "330", "1000"},
		{"fine tick keeps precision", 0.333, 10, types.SideBuy, types.TickSize0001, "333", "1000"},
		{"size rounds to cents", 0.5, 10.005, types.SideBuy, types.TickSize001, "501", "1001"},
		{"size half away from zero", 0.33, 1.505, types.SideBuy, types.TickSize001, "50", "151"},
		{"fine tick cost floors", 0.333, 1, types.SideBuy, types.TickSize0001, "33", "100"},
		{"full price", 1.0, 3, types.SideBuy, types.TickSize001, "300", "300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maker, taker, err := CalculateOrderAmounts(tt.price, tt.size, tt.side, tt.tick)
			if err != nil {
				t.Fatalf("CalculateOrderAmounts: %v", err)
			}
			if maker != tt.wantMaker || taker != tt.wantTaker {
				t.Errorf("got (%s, %s), want (%s, %s)", maker, taker, tt.wantMaker, tt.wantTaker)
			}
		})
	}
}

func TestCalculateOrderAmountsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		size  float64
	}{
		{"zero price", 0, 10},
		{"negative price", -0.5, 10},
		{"price above one", 1.01, 10},
		{"zero size", 0.5, 0},
		{"negative size", 0.5, -1},
		{"nan price", math.NaN(), 10},
		{"nan size", 0.5, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CalculateOrderAmounts(tt.price, tt.size, types.SideBuy, types.TickSize001)
			if !types.IsKind(err, types.KindValidation) {
				t.Errorf("error = %v, want validation kind", err)
			}
		})
	}
}

func TestCalculateOrderAmountsRoundsToZero(t *testing.T) {
	// 0.001 rounds to zero at 2-decimal ticks.
	_, _, err := CalculateOrderAmounts(0.001, 10, types.SideBuy, types.TickSize001)
	if !types.IsKind(err, types.KindValidation) {
		t.Errorf("error = %v, want validation kind", err)
	}
}

func TestGenerateSalt(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		salt, err := GenerateSalt()
		if err != nil {
			t.Fatal(err)
		}
		if salt == "" {
			t.Fatal("empty salt")
		}
		for _, r := range salt {
			if r < '0' || r > '9' {
				t.Fatalf("salt %q is not a decimal string", salt)
			}
		}
		if seen[salt] {
			t.Fatalf("salt %q repeated", salt)
		}
		seen[salt] = true
	}
}
