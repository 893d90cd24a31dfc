package blockchain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/hylo-quote-engine/internal/config"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/metrics"
)

const ACCOUNT_FETCHER_SERVICE = "account-fetcher-svc"

// maxAccountsPerRequest is the getMultipleAccounts limit.
const maxAccountsPerRequest = 100

// MultipleAccountsGetter is satisfied by *rpc.Client.
type MultipleAccountsGetter interface {
	GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error)
}

// AccountFetcher builds account snapshots from a live cluster.
type AccountFetcher struct {
	container.BaseDIInstance

	client  MultipleAccountsGetter
	timeout time.Duration
}

func NewAccountFetcher(client MultipleAccountsGetter, timeout time.Duration) *AccountFetcher {
	return &AccountFetcher{client: client, timeout: timeout}
}

func (svc *AccountFetcher) ID() string {
	return ACCOUNT_FETCHER_SERVICE
}

func (svc *AccountFetcher) Configure(c container.IContainer) error {
	rpcConfig, ok := c.GetConfig(config.RPC_CONFIG_KEY).(*config.RPCConfig)
	if !ok || rpcConfig == nil {
		return errors.New("invalid rpc config")
	}
	svc.client = rpc.New(rpcConfig.RPCUrl)
	svc.timeout = rpcConfig.FetchTimeout
	return nil
}

func (svc *AccountFetcher) Start() error {
	return nil
}

func (svc *AccountFetcher) Stop() error {
	return nil
}

// Fetch loads keys at confirmed commitment. Accounts that do not exist are left out of the map.
func (svc *AccountFetcher) Fetch(ctx context.Context, keys []solana.PublicKey) (domain.AccountMap, error) {
	if svc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		metrics.AccountFetchDuration.Observe(time.Since(start).Seconds())
	}()

	accounts := make(domain.AccountMap, len(keys))
	for lo := 0; lo < len(keys); lo += maxAccountsPerRequest {
		hi := min(lo+maxAccountsPerRequest, len(keys))
		chunk := keys[lo:hi]

		res, err := svc.client.GetMultipleAccountsWithOpts(ctx, chunk, &rpc.GetMultipleAccountsOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: rpc.CommitmentConfirmed,
		})
		if err != nil {
			return nil, fmt.Errorf("getMultipleAccounts: %w", err)
		}
		if len(res.Value) != len(chunk) {
			return nil, fmt.Errorf("getMultipleAccounts: got %d accounts for %d keys", len(res.Value), len(chunk))
		}

		for i, acc := range res.Value {
			if acc == nil {
				log.Debug().Str("account", chunk[i].String()).Msg("[AccountFetcher] account does not exist")
				continue
			}
			accounts[chunk[i]] = domain.Account{
				Lamports:   acc.Lamports,
				Owner:      acc.Owner,
				Data:       acc.Data.GetBinary(),
				Executable: acc.Executable,
			}
		}
	}
	return accounts, nil
}
