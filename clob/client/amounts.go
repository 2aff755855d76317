package client

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/roushou/polyte/clob/types"
)

// sizeDecimals is the precision sizes are quoted at, independent of tick size.
const sizeDecimals = 2

// ValidatePriceSize rejects inputs the exchange would refuse: prices outside
// (0, 1], non-positive sizes, and NaN (which would otherwise slip through
// float comparisons).
func ValidatePriceSize(price, size float64) error {
	if math.IsNaN(price) || math.IsNaN(size) {
		return types.NewError(types.KindValidation, "price and size must not be NaN")
	}
	if price <= 0 || price > 1 {
		return types.Errorf(types.KindValidation, "price %v outside (0, 1]", price)
	}
	if size <= 0 {
		return types.Errorf(types.KindValidation, "size %v must be positive", size)
	}
	return nil
}

// CalculateOrderAmounts converts a human price and share size into the raw
// integer maker/taker amounts the exchange expects.
//
// Price is rounded to the market's tick precision and size to 2 decimals,
// both half away from zero. The collateral leg is price*size rounded to tick
// precision; both legs are then scaled into hundredths and floored, so an
// order never asks for more than the rounded values represent. For a BUY the
// maker pays collateral and takes shares; a SELL is the mirror image.
func CalculateOrderAmounts(price, size float64, side types.Side, tick types.TickSize) (makerAmount, takerAmount string, err error) {
	if err := ValidatePriceSize(price, size); err != nil {
		return "", "", err
	}

	p := decimal.NewFromFloat(price).Round(tick.Decimals())
	s := decimal.NewFromFloat(size).Round(sizeDecimals)
	if p.Sign() <= 0 || s.Sign() <= 0 {
		return "", "", types.Errorf(types.KindValidation, "price %v or size %v rounds to zero", price, size)
	}

	cost := p.Mul(s).Round(tick.Decimals())

	rawShares := s.Shift(sizeDecimals).Floor()
	rawCost := cost.Shift(sizeDecimals).Floor()

	if side == types.SideBuy {
		return rawCost.String(), rawShares.String(), nil
	}
	return rawShares.String(), rawCost.String(), nil
}

// GenerateSalt returns a random decimal salt for order uniqueness.
func GenerateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", types.WrapError(types.KindCrypto, err, "generate salt")
	}
	return new(big.Int).SetBytes(buf).String(), nil
}
