package quote

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxuan190/hylo-quote-engine/internal/adapters/accountmap"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/services/builder"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol/protocoltest"
)

func newTestService(t *testing.T) (*Service, domain.AccountMap) {
	t.Helper()
	f := protocoltest.Default()
	accounts, err := f.Accounts()
	require.NoError(t, err)
	return NewService(f.ProgramID), accounts
}

func TestServiceQuote(t *testing.T) {
	svc, accounts := newTestService(t)

	q, err := svc.Quote(context.Background(), domain.QuoteParams{
		Amount:     1_000_000_000,
		InputMint:  domain.JitoSOL.Mint,
		OutputMint: domain.HyUSD.Mint,
	}, accounts)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000), q.InAmount)
	assert.Equal(t, uint64(179_820_000), q.OutAmount)
	assert.Equal(t, uint64(1_000_000), q.FeeAmount)
	assert.Equal(t, domain.JitoSOL.Mint, q.FeeMint)
	assert.Equal(t, "0.001", q.FeePct.String())
}

func TestServiceQuoteErrors(t *testing.T) {
	svc, accounts := newTestService(t)
	ctx := context.Background()

	_, err := svc.Quote(ctx, domain.QuoteParams{
		Amount: 1, InputMint: domain.HyUSD.Mint, OutputMint: domain.XSOL.Mint, SwapMode: domain.SwapModeExactOut,
	}, accounts)
	assert.ErrorIs(t, err, ErrExactOutNotSupported)

	_, err = svc.Quote(ctx, domain.QuoteParams{
		Amount: 1, InputMint: domain.JitoSOL.Mint, OutputMint: domain.HyloSOL.Mint,
	}, accounts)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPair)

	_, err = svc.Quote(ctx, domain.QuoteParams{
		Amount: 0, InputMint: domain.HyUSD.Mint, OutputMint: domain.XSOL.Mint,
	}, accounts)
	assert.ErrorIs(t, err, protocol.ErrZeroAmount)

	_, err = svc.Quote(ctx, domain.QuoteParams{
		Amount: 1, InputMint: domain.HyUSD.Mint, OutputMint: domain.XSOL.Mint,
	}, domain.AccountMap{})
	assert.ErrorIs(t, err, accountmap.ErrAccountNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Quote(cancelled, domain.QuoteParams{
		Amount: 1, InputMint: domain.HyUSD.Mint, OutputMint: domain.XSOL.Mint,
	}, accounts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceAccountsToUpdate(t *testing.T) {
	svc, accounts := newTestService(t)

	keys, err := svc.AccountsToUpdate()
	require.NoError(t, err)
	assert.Len(t, keys, 7)
	for _, k := range keys {
		assert.Contains(t, accounts, k, "snapshot should carry %s", k)
	}
	assert.Equal(t, common.HyloLabel, svc.Label())
	assert.Len(t, svc.ReserveMints(), 4)
}

func TestServiceSwapAccounts(t *testing.T) {
	svc, _ := newTestService(t)
	authority := solana.NewWallet().PublicKey()
	src := solana.NewWallet().PublicKey()
	dst := solana.NewWallet().PublicKey()

	metas, err := svc.SwapAccounts(&domain.SwapParams{
		InAmount:                1_000_000,
		SourceMint:              domain.HyUSD.Mint,
		DestinationMint:         domain.HyloSOL.Mint,
		SourceTokenAccount:      src,
		DestinationTokenAccount: dst,
		TokenTransferAuthority:  authority,
	})
	require.NoError(t, err)
	require.Len(t, metas, 10)

	assert.Equal(t, authority, metas[0].PublicKey)
	assert.True(t, metas[0].IsSigner)
	assert.Equal(t, src, metas[1].PublicKey)
	assert.True(t, metas[1].IsWritable)

	header, err := builder.LstHeaderPDA(svc.ProgramID(), domain.HyloSOL.Mint)
	require.NoError(t, err)
	assert.Equal(t, header, metas[6].PublicKey)
	assert.False(t, metas[6].IsWritable)
	assert.Equal(t, svc.ProgramID(), metas[9].PublicKey)
}

func TestServiceSwapAccountsRejects(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SwapAccounts(&domain.SwapParams{SwapMode: domain.SwapModeExactOut})
	assert.ErrorIs(t, err, ErrExactOutNotSupported)

	_, err = svc.SwapAccounts(nil)
	assert.ErrorIs(t, err, ErrMissingSwapParams)

	_, err = svc.SwapAccounts(&domain.SwapParams{MissingDynamicAccountsAsDefault: true})
	assert.ErrorIs(t, err, ErrDynamicAccountsNotSupported)

	_, err = svc.SwapAccounts(&domain.SwapParams{
		SourceMint:      domain.HyUSD.Mint,
		DestinationMint: domain.XSOL.Mint,
	})
	assert.ErrorIs(t, err, builder.ErrMissingSwapAccount)
}
