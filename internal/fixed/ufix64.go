// Package fixed implements unsigned fixed-point amounts with an explicit decimal exponent.
package fixed

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Common exponents.
const (
	ExpLamports int8 = -9
	ExpUSD      int8 = -6
	ExpPrice    int8 = -8
	ExpUnit     int8 = 0
)

// UFix64 is a uint64 magnitude whose true value is Bits * 10^Exp.
// Values with different exponents are not comparable; doing so is a programmer error and panics.
type UFix64 struct {
	Bits uint64
	Exp  int8
}

func New(bits uint64, exp int8) UFix64 {
	return UFix64{Bits: bits, Exp: exp}
}

func Zero(exp int8) UFix64 {
	return UFix64{Exp: exp}
}

// IsZero reports a zero magnitude regardless of exponent.
func (f UFix64) IsZero() bool {
	return f.Bits == 0
}

func (f UFix64) mustMatch(o UFix64) {
	if f.Exp != o.Exp {
		panic(fmt.Sprintf("fixed: exponent mismatch %d != %d", f.Exp, o.Exp))
	}
}

// Equal panics when exponents differ.
func (f UFix64) Equal(o UFix64) bool {
	f.mustMatch(o)
	return f.Bits == o.Bits
}

// Cmp panics when exponents differ.
func (f UFix64) Cmp(o UFix64) int {
	f.mustMatch(o)
	switch {
	case f.Bits < o.Bits:
		return -1
	case f.Bits > o.Bits:
		return 1
	default:
		return 0
	}
}

func (f UFix64) CheckedAdd(o UFix64) (UFix64, bool) {
	f.mustMatch(o)
	sum := f.Bits + o.Bits
	if sum < f.Bits {
		return UFix64{}, false
	}
	return UFix64{Bits: sum, Exp: f.Exp}, true
}

func (f UFix64) CheckedSub(o UFix64) (UFix64, bool) {
	f.mustMatch(o)
	if o.Bits > f.Bits {
		return UFix64{}, false
	}
	return UFix64{Bits: f.Bits - o.Bits, Exp: f.Exp}, true
}

// Convert rescales to exp, flooring when precision is dropped.
func (f UFix64) Convert(exp int8) (UFix64, bool) {
	bits, ok := scale(f.Bits, int(f.Exp)-int(exp))
	if !ok {
		return UFix64{}, false
	}
	return UFix64{Bits: bits, Exp: exp}, true
}

// Decimal returns the exact decimal value.
func (f UFix64) Decimal() decimal.Decimal {
	return decimal.NewFromUint64(f.Bits).Shift(int32(f.Exp))
}

func (f UFix64) String() string {
	return f.Decimal().String()
}
