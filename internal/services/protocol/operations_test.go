package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol/protocoltest"
)

func TestOutput(t *testing.T) {
	s := loadFixture(t, protocoltest.Default())

	tests := []struct {
		name    string
		in, out domain.Token
		amount  uint64
		wantOut uint64
		wantFee uint64
		feeBase uint64
		feeMint domain.Token
	}{
		{"mint hyUSD with JitoSOL", domain.JitoSOL, domain.HyUSD, 1_000_000_000, 179_820_000, 1_000_000, 1_000_000_000, domain.JitoSOL},
		{"redeem hyUSD for hyloSOL", domain.HyUSD, domain.HyloSOL, 150_000_000, 950_476_191, 1_904_761, 952_380_952, domain.HyloSOL},
		{"mint xSOL with JitoSOL", domain.JitoSOL, domain.XSOL, 1_000_000_000, 89_730_000, 3_000_000, 1_000_000_000, domain.JitoSOL},
		{"redeem xSOL for JitoSOL", domain.XSOL, domain.JitoSOL, 9_000_000, 99_600_000, 400_000, 100_000_000, domain.JitoSOL},
		{"swap hyUSD to xSOL", domain.HyUSD, domain.XSOL, 2_000_000, 997_500, 5_000, 2_000_000, domain.HyUSD},
		{"swap xSOL to hyUSD", domain.XSOL, domain.HyUSD, 10_000_000, 19_950_000, 50_000, 20_000_000, domain.HyUSD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := mustPair(t, tt.in, tt.out)
			got, err := s.Output(pair, tt.in.Amount(tt.amount))
			require.NoError(t, err)

			assert.Equal(t, tt.in.Amount(tt.amount), got.InAmount)
			assert.Equal(t, tt.out.Amount(tt.wantOut), got.OutAmount)
			assert.Equal(t, tt.feeMint.Amount(tt.wantFee), got.FeeAmount)
			assert.Equal(t, tt.feeMint.Amount(tt.feeBase), got.FeeBase)
			assert.Equal(t, tt.feeMint.Mint, got.FeeMint)
		})
	}
}

func TestOutputZeroAmount(t *testing.T) {
	s := loadFixture(t, protocoltest.Default())
	_, err := s.Output(mustPair(t, domain.HyUSD, domain.XSOL), fixed.Zero(fixed.ExpUSD))
	assert.ErrorIs(t, err, protocol.ErrZeroAmount)
}

func TestOutputInsufficientReserves(t *testing.T) {
	s := loadFixture(t, protocoltest.Default())
	_, err := s.Output(mustPair(t, domain.HyUSD, domain.HyloSOL), domain.HyUSD.Amount(1_000_000_000_000))
	assert.ErrorIs(t, err, protocol.ErrInsufficientReserves)
}

func TestOutputInsolventLevercoin(t *testing.T) {
	f := protocoltest.Default()
	f.StablecoinSupply = 300_000_000_000
	s := loadFixture(t, f)

	_, err := s.Output(mustPair(t, domain.JitoSOL, domain.XSOL), domain.JitoSOL.Amount(1_000_000_000))
	assert.ErrorIs(t, err, protocol.ErrInsolvent)

	// stablecoin minting does not depend on NAV
	_, err = s.Output(mustPair(t, domain.JitoSOL, domain.HyUSD), domain.JitoSOL.Amount(1_000_000_000))
	assert.NoError(t, err)
}

func TestOutputExponentMismatchPanics(t *testing.T) {
	s := loadFixture(t, protocoltest.Default())
	assert.Panics(t, func() {
		_, _ = s.Output(mustPair(t, domain.HyUSD, domain.XSOL), fixed.New(1, fixed.ExpLamports))
	})
}
