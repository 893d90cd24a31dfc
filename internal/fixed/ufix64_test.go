package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsZeroIgnoresExponent(t *testing.T) {
	assert.True(t, Zero(ExpLamports).IsZero())
	assert.True(t, New(0, ExpUSD).IsZero())
	assert.False(t, New(1, ExpUSD).IsZero())
}

func TestCompareMismatchedExponentPanics(t *testing.T) {
	a := New(1, ExpLamports)
	b := New(1, ExpUSD)
	assert.Panics(t, func() { a.Equal(b) })
	assert.Panics(t, func() { a.Cmp(b) })
	assert.Panics(t, func() { a.CheckedAdd(b) })
}

func TestCheckedArithmetic(t *testing.T) {
	sum, ok := New(math.MaxUint64-1, 0).CheckedAdd(New(1, 0))
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), sum.Bits)

	_, ok = sum.CheckedAdd(New(1, 0))
	assert.False(t, ok)

	_, ok = New(1, 0).CheckedSub(New(2, 0))
	assert.False(t, ok)

	diff, ok := New(5, ExpUSD).CheckedSub(New(2, ExpUSD))
	require.True(t, ok)
	assert.True(t, diff.Equal(New(3, ExpUSD)))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   UFix64
		exp  int8
		want uint64
		ok   bool
	}{
		{"widen", New(1_500_000, ExpUSD), ExpLamports, 1_500_000_000, true},
		{"narrow floors", New(1_999_999_999, ExpLamports), ExpUSD, 1_999_999, true},
		{"same", New(42, ExpUSD), ExpUSD, 42, true},
		{"overflow", New(math.MaxUint64, 0), ExpLamports, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Convert(tt.exp)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Bits)
				assert.Equal(t, tt.exp, got.Exp)
			}
		})
	}
}

func TestMulAcrossExponents(t *testing.T) {
	// 2 SOL at $150.5 is $301.
	sol := New(2_000_000_000, ExpLamports)
	price := New(15_050_000_000, ExpPrice)
	usd, ok := Mul(sol, price, ExpUSD)
	require.True(t, ok)
	assert.Equal(t, uint64(301_000_000), usd.Bits)
}

func TestDivAcrossExponents(t *testing.T) {
	// $301 at $150.5 per SOL is 2 SOL.
	usd := New(301_000_000, ExpUSD)
	price := New(15_050_000_000, ExpPrice)
	sol, ok := Div(usd, price, ExpLamports)
	require.True(t, ok)
	assert.Equal(t, uint64(2_000_000_000), sol.Bits)

	_, ok = Div(usd, Zero(ExpPrice), ExpLamports)
	assert.False(t, ok)
}

func TestMulBps(t *testing.T) {
	fee, ok := MulBps(New(1_000_000, ExpUSD), 30)
	require.True(t, ok)
	assert.Equal(t, uint64(3_000), fee.Bits)
	assert.Equal(t, ExpUSD, fee.Exp)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5", New(1_500_000, ExpUSD).String())
	assert.Equal(t, "0.000000001", New(1, ExpLamports).String())
}
