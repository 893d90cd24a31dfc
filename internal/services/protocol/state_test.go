package protocol_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxuan190/hylo-quote-engine/internal/adapters/accountmap"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
	"github.com/hxuan190/hylo-quote-engine/internal/services/builder"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol/protocoltest"
)

func loadFixture(t *testing.T, f protocoltest.Fixture) *protocol.State {
	t.Helper()
	accounts, err := f.Accounts()
	require.NoError(t, err)
	s, err := protocol.Load(accounts, f.ProgramID)
	require.NoError(t, err)
	return s
}

func mustPair(t *testing.T, in, out domain.Token) domain.Pair {
	t.Helper()
	p, err := domain.NewPair(in.Mint, out.Mint)
	require.NoError(t, err)
	return p
}

func TestLoad(t *testing.T) {
	s := loadFixture(t, protocoltest.Default())

	assert.Equal(t, fixed.New(15_000_000_000, fixed.ExpPrice), s.SolUsd)
	assert.Equal(t, uint16(25), s.Fees.Swap)
	assert.Equal(t, fixed.New(100_000_000_000, fixed.ExpUSD), s.StablecoinSupply)
	require.Len(t, s.LSTs, 2)

	jito := s.LSTs[domain.JitoSOL.Mint]
	vault, err := builder.LstVaultPDA(common.HyloExchangeProgramID, domain.JitoSOL.Mint)
	require.NoError(t, err)
	assert.Equal(t, vault, jito.Vault)
	assert.Equal(t, fixed.New(1_000_000_000_000, fixed.ExpLamports), jito.Reserve)
}

func TestCollateralAndNAV(t *testing.T) {
	s := loadFixture(t, protocoltest.Default())

	collateral, err := s.CollateralUSD()
	require.NoError(t, err)
	assert.Equal(t, fixed.New(258_750_000_000, fixed.ExpUSD), collateral)

	nav, err := s.LevercoinNAV()
	require.NoError(t, err)
	assert.Equal(t, fixed.New(2_000_000_000, protocol.ExpNAV), nav)
}

func TestNAVWithoutLevercoin(t *testing.T) {
	f := protocoltest.Default()
	f.LevercoinSupply = 0
	s := loadFixture(t, f)

	nav, err := s.LevercoinNAV()
	require.NoError(t, err)
	assert.Equal(t, fixed.New(1_000_000_000, protocol.ExpNAV), nav)
}

func TestNAVInsolvent(t *testing.T) {
	f := protocoltest.Default()
	f.StablecoinSupply = 300_000_000_000
	s := loadFixture(t, f)

	_, err := s.LevercoinNAV()
	assert.ErrorIs(t, err, protocol.ErrInsolvent)
}

func TestLoadMissingAccount(t *testing.T) {
	f := protocoltest.Default()
	accounts, err := f.Accounts()
	require.NoError(t, err)
	delete(accounts, domain.XSOL.Mint)

	_, err = protocol.Load(accounts, f.ProgramID)
	require.ErrorIs(t, err, accountmap.ErrAccountNotFound)
	assert.Contains(t, err.Error(), domain.XSOL.Mint.String())
}

func TestLoadRejectsWrongProgram(t *testing.T) {
	accounts, err := protocoltest.Default().Accounts()
	require.NoError(t, err)

	_, err = protocol.Load(accounts, solana.NewWallet().PublicKey())
	assert.ErrorIs(t, err, accountmap.ErrAccountNotFound)
}

func TestLoadRejectsZeroPrice(t *testing.T) {
	f := protocoltest.Default()
	f.SolUsd = 0
	accounts, err := f.Accounts()
	require.NoError(t, err)

	_, err = protocol.Load(accounts, f.ProgramID)
	assert.ErrorIs(t, err, protocol.ErrInvalidState)
}

func TestLoadRejectsHeaderVaultOtherThanPDA(t *testing.T) {
	f := protocoltest.Default()
	jito := f.LSTs[domain.JitoSOL.Mint]
	jito.Vault = solana.NewWallet().PublicKey()
	f.LSTs[domain.JitoSOL.Mint] = jito
	accounts, err := f.Accounts()
	require.NoError(t, err)

	_, err = protocol.Load(accounts, f.ProgramID)
	require.ErrorIs(t, err, protocol.ErrInvalidState)
	assert.Contains(t, err.Error(), jito.Vault.String())
}
