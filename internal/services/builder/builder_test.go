package builder

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
)

func TestPDAsAreMemoizedAndDistinct(t *testing.T) {
	programID := common.HyloExchangeProgramID

	state, err := HyloStatePDA(programID)
	require.NoError(t, err)
	again, err := HyloStatePDA(programID)
	require.NoError(t, err)
	assert.Equal(t, state, again)

	want, _, err := solana.FindProgramAddress([][]byte{[]byte(common.HyloStateSeed)}, programID)
	require.NoError(t, err)
	assert.Equal(t, want, state)

	jitoHeader, err := LstHeaderPDA(programID, domain.JitoSOL.Mint)
	require.NoError(t, err)
	hyloHeader, err := LstHeaderPDA(programID, domain.HyloSOL.Mint)
	require.NoError(t, err)
	jitoVault, err := LstVaultPDA(programID, domain.JitoSOL.Mint)
	require.NoError(t, err)

	assert.NotEqual(t, jitoHeader, hyloHeader)
	assert.NotEqual(t, jitoHeader, jitoVault)
}

func TestAccountsToUpdate(t *testing.T) {
	keys, err := AccountsToUpdate(common.HyloExchangeProgramID)
	require.NoError(t, err)
	require.Len(t, keys, 7)
	assert.Equal(t, domain.HyUSD.Mint, keys[1])
	assert.Equal(t, domain.XSOL.Mint, keys[2])

	seen := make(map[solana.PublicKey]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate %s", k)
		seen[k] = true
	}
}

func TestBuildSwapAccountsWithoutLST(t *testing.T) {
	pair, err := domain.NewPair(domain.HyUSD.Mint, domain.XSOL.Mint)
	require.NoError(t, err)
	params := &domain.SwapParams{
		SourceTokenAccount:      solana.NewWallet().PublicKey(),
		DestinationTokenAccount: solana.NewWallet().PublicKey(),
		TokenTransferAuthority:  solana.NewWallet().PublicKey(),
	}

	metas, err := BuildSwapAccounts(common.HyloExchangeProgramID, pair, params)
	require.NoError(t, err)
	require.Len(t, metas, 10)

	header, err := LstHeaderPDA(common.HyloExchangeProgramID, domain.LSTs[0].Mint)
	require.NoError(t, err)
	assert.Equal(t, header, metas[6].PublicKey)
	assert.Equal(t, domain.HyUSD.Mint, metas[3].PublicKey)
	assert.True(t, metas[3].IsWritable)
	assert.Equal(t, common.TokenProgramID, metas[8].PublicKey)
	assert.False(t, metas[8].IsWritable)
}

func TestBuildSwapAccountsMissing(t *testing.T) {
	pair, err := domain.NewPair(domain.HyUSD.Mint, domain.XSOL.Mint)
	require.NoError(t, err)

	_, err = BuildSwapAccounts(common.HyloExchangeProgramID, pair, &domain.SwapParams{
		SourceTokenAccount:      solana.NewWallet().PublicKey(),
		DestinationTokenAccount: solana.NewWallet().PublicKey(),
	})
	assert.ErrorIs(t, err, ErrMissingSwapAccount)
}
