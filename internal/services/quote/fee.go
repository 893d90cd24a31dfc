package quote

import (
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
	"github.com/shopspring/decimal"
)

// feePctPrecision is the number of fractional digits kept in fee percentages.
const feePctPrecision = 28

// FeePctDecimal computes fee/base as a decimal. A zero base yields zero, whether the base is
// legitimately empty or not yet initialized. Mismatched exponents panic.
//
// The error is always nil: decimal division is arbitrary precision and the base is non-zero by
// the time it runs. It stays in the signature so OperationToQuote keeps one failure path.
func FeePctDecimal(fee, base fixed.UFix64) (decimal.Decimal, error) {
	if fee.Exp != base.Exp {
		panic("quote: fee and fee base exponents differ")
	}
	if base.IsZero() {
		return decimal.Zero, nil
	}
	return decimal.NewFromUint64(fee.Bits).DivRound(decimal.NewFromUint64(base.Bits), feePctPrecision), nil
}
