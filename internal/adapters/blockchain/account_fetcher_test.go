package blockchain

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRPC struct {
	accounts map[solana.PublicKey]*rpc.Account
	calls    [][]solana.PublicKey
	opts     *rpc.GetMultipleAccountsOpts
	err      error
}

func (f *fakeRPC) GetMultipleAccountsWithOpts(_ context.Context, keys []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error) {
	f.calls = append(f.calls, keys)
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	res := &rpc.GetMultipleAccountsResult{Value: make([]*rpc.Account, len(keys))}
	for i, k := range keys {
		res.Value[i] = f.accounts[k]
	}
	return res, nil
}

func TestFetch(t *testing.T) {
	present := solana.NewWallet().PublicKey()
	absent := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	fake := &fakeRPC{accounts: map[solana.PublicKey]*rpc.Account{
		present: {Lamports: 42, Owner: owner, Data: rpc.DataBytesOrJSONFromBytes([]byte{1, 2, 3})},
	}}

	accounts, err := NewAccountFetcher(fake, 0).Fetch(context.Background(), []solana.PublicKey{present, absent})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, []byte{1, 2, 3}, accounts[present].Data)
	assert.Equal(t, uint64(42), accounts[present].Lamports)
	assert.Equal(t, owner, accounts[present].Owner)
	assert.NotContains(t, accounts, absent)

	assert.Equal(t, solana.EncodingBase64, fake.opts.Encoding)
	assert.Equal(t, rpc.CommitmentConfirmed, fake.opts.Commitment)
}

func TestFetchChunks(t *testing.T) {
	keys := make([]solana.PublicKey, 250)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	fake := &fakeRPC{}

	_, err := NewAccountFetcher(fake, 0).Fetch(context.Background(), keys)
	require.NoError(t, err)
	require.Len(t, fake.calls, 3)
	assert.Len(t, fake.calls[0], 100)
	assert.Len(t, fake.calls[2], 50)
}

func TestFetchError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewAccountFetcher(&fakeRPC{err: boom}, 0).Fetch(context.Background(), []solana.PublicKey{solana.NewWallet().PublicKey()})
	assert.ErrorIs(t, err, boom)
}
