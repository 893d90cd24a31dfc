package fixed

import (
	"sync"

	"github.com/holiman/uint256"
)

// 10^77 is the largest power of ten below 2^256.
const maxPow10 = 77

var pow10 [maxPow10 + 1]*uint256.Int

func init() {
	pow10[0] = uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := 1; i <= maxPow10; i++ {
		pow10[i] = new(uint256.Int).Mul(pow10[i-1], ten)
	}
}

var uint256Pool = sync.Pool{
	New: func() interface{} {
		return new(uint256.Int)
	},
}

func getU256() *uint256.Int {
	return uint256Pool.Get().(*uint256.Int)
}

func putU256(v *uint256.Int) {
	v.Clear()
	uint256Pool.Put(v)
}

// Mul returns a*b expressed at exp, floored.
func Mul(a, b UFix64, exp int8) (UFix64, bool) {
	x := getU256()
	y := getU256()
	defer putU256(x)
	defer putU256(y)

	x.SetUint64(a.Bits)
	y.SetUint64(b.Bits)
	x.Mul(x, y)

	bits, ok := scaleU256(x, int(a.Exp)+int(b.Exp)-int(exp))
	if !ok {
		return UFix64{}, false
	}
	return UFix64{Bits: bits, Exp: exp}, true
}

// Div returns a/b expressed at exp, floored. Division by zero reports !ok.
func Div(a, b UFix64, exp int8) (UFix64, bool) {
	if b.Bits == 0 {
		return UFix64{}, false
	}
	x := getU256()
	y := getU256()
	defer putU256(x)
	defer putU256(y)

	x.SetUint64(a.Bits)
	y.SetUint64(b.Bits)

	shift := int(a.Exp) - int(b.Exp) - int(exp)
	if shift >= 0 {
		if shift > maxPow10 {
			return UFix64{}, false
		}
		if _, overflow := x.MulOverflow(x, pow10[shift]); overflow {
			return UFix64{}, false
		}
	} else {
		if -shift > maxPow10 {
			// Denominator exceeds any uint64 numerator.
			return UFix64{Exp: exp}, true
		}
		if _, overflow := y.MulOverflow(y, pow10[-shift]); overflow {
			return UFix64{Exp: exp}, true
		}
	}
	x.Div(x, y)
	if !x.IsUint64() {
		return UFix64{}, false
	}
	return UFix64{Bits: x.Uint64(), Exp: exp}, true
}

// MulBps applies a basis-point rate to f, floored.
func MulBps(f UFix64, bps uint16) (UFix64, bool) {
	x := getU256()
	defer putU256(x)

	x.SetUint64(f.Bits)
	x.Mul(x, uint256.NewInt(uint64(bps)))
	x.Div(x, uint256.NewInt(10_000))
	if !x.IsUint64() {
		return UFix64{}, false
	}
	return UFix64{Bits: x.Uint64(), Exp: f.Exp}, true
}

func scale(bits uint64, shift int) (uint64, bool) {
	x := getU256()
	defer putU256(x)
	x.SetUint64(bits)
	return scaleU256(x, shift)
}

// scaleU256 multiplies x by 10^shift (or floors a division for negative shift) and narrows to uint64.
// x is overwritten.
func scaleU256(x *uint256.Int, shift int) (uint64, bool) {
	switch {
	case shift > 0:
		if shift > maxPow10 {
			if x.IsZero() {
				return 0, true
			}
			return 0, false
		}
		if _, overflow := x.MulOverflow(x, pow10[shift]); overflow {
			return 0, false
		}
	case shift < 0:
		if -shift > maxPow10 {
			return 0, true
		}
		x.Div(x, pow10[-shift])
	}
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}
